package dto

import "github.com/shopspring/decimal"

// CreateSaleItemRequest datos para crear una línea de venta.
type CreateSaleItemRequest struct {
	SaleID   string          `json:"saleId"`
	ItemID   string          `json:"itemId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Discount decimal.Decimal `json:"discount,omitempty"`
}

// UpdateSaleItemRequest patch parcial de una línea de venta.
type UpdateSaleItemRequest struct {
	ID       string           `json:"id"`
	Quantity *int             `json:"quantity,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
}

// SaleItemResponse proyección de una línea de venta.
type SaleItemResponse struct {
	ID       string          `json:"id"`
	SaleID   string          `json:"saleId"`
	ItemID   string          `json:"itemId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Discount decimal.Decimal `json:"discount"`
}

// SaleItemDetail referencia mínima al artículo de una línea.
type SaleItemDetail struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// SaleItemWithDetailsResponse línea de venta con los datos del artículo; Item
// es nil si el artículo ya no existe.
type SaleItemWithDetailsResponse struct {
	SaleItemResponse
	Item *SaleItemDetail `json:"item"`
}
