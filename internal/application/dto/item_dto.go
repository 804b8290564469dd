package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
)

// CreateItemRequest datos para crear un artículo. Status lo decide el caller,
// esta capa no lo deriva de Quantity.
type CreateItemRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	SKU         string            `json:"sku"`
	Barcode     string            `json:"barcode,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	Cost        decimal.Decimal   `json:"cost"`
	Quantity    int               `json:"quantity"`
	Status      entity.ItemStatus `json:"status"`
	CategoryID  string            `json:"categoryId"`
	OrgID       string            `json:"orgId"`
	ImageURL    string            `json:"imageUrl,omitempty"`
}

// UpdateItemRequest patch parcial de un artículo; solo los campos no nulos se escriben.
type UpdateItemRequest struct {
	ID          string             `json:"id"`
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	SKU         *string            `json:"sku,omitempty"`
	Barcode     *string            `json:"barcode,omitempty"`
	Price       *decimal.Decimal   `json:"price,omitempty"`
	Cost        *decimal.Decimal   `json:"cost,omitempty"`
	Quantity    *int               `json:"quantity,omitempty"`
	Status      *entity.ItemStatus `json:"status,omitempty"`
	CategoryID  *string            `json:"categoryId,omitempty"`
	ImageURL    *string            `json:"imageUrl,omitempty"`
}

// Fields devuelve los campos efectivamente presentes en el patch; es también el
// payload que queda registrado en la historia del artículo.
func (r UpdateItemRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.SKU != nil {
		fields["sku"] = *r.SKU
	}
	if r.Barcode != nil {
		fields["barcode"] = *r.Barcode
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Cost != nil {
		fields["cost"] = *r.Cost
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.CategoryID != nil {
		fields["categoryId"] = *r.CategoryID
	}
	if r.ImageURL != nil {
		fields["imageUrl"] = *r.ImageURL
	}
	return fields
}

// BatchItemUpdate par (id, patch) para items.batchUpdate.
type BatchItemUpdate struct {
	ID      string            `json:"id"`
	Updates UpdateItemRequest `json:"updates"`
}

// BatchUpdateItemsRequest lote de patches sobre artículos de una organización.
type BatchUpdateItemsRequest struct {
	OrgID string            `json:"orgId"`
	Items []BatchItemUpdate `json:"items"`
}

// ItemResponse proyección de un artículo.
type ItemResponse struct {
	ID          string            `json:"id"`
	OrgID       string            `json:"orgId"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	SKU         string            `json:"sku"`
	Barcode     string            `json:"barcode,omitempty"`
	Price       decimal.Decimal   `json:"price"`
	Cost        decimal.Decimal   `json:"cost"`
	Quantity    int               `json:"quantity"`
	Status      entity.ItemStatus `json:"status"`
	CategoryID  string            `json:"categoryId"`
	CreatedBy   string            `json:"createdBy"`
	UpdatedBy   string            `json:"updatedBy"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ItemHistoryResponse entrada de la historia de un artículo.
type ItemHistoryResponse struct {
	ID        string               `json:"id"`
	ItemID    string               `json:"itemId"`
	Action    entity.HistoryAction `json:"action"`
	Changes   json.RawMessage      `json:"changes"`
	Timestamp time.Time            `json:"timestamp"`
	UserID    string               `json:"userId"`
}
