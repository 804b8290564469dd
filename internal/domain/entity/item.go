package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus estado de stock de un artículo. Lo fija el caller; esta capa no lo
// deriva de la cantidad.
type ItemStatus string

const (
	ItemInStock    ItemStatus = "in_stock"
	ItemLowStock   ItemStatus = "low_stock"
	ItemOutOfStock ItemStatus = "out_of_stock"
)

// ValidItemStatus indica si s es uno de los estados conocidos.
func ValidItemStatus(s ItemStatus) bool {
	switch s {
	case ItemInStock, ItemLowStock, ItemOutOfStock:
		return true
	}
	return false
}

// Item representa un artículo del catálogo. DeletedAt distinto de nil marca
// borrado lógico: se excluye de listados y lecturas pero se conserva para la
// historia de auditoría.
type Item struct {
	ID          string
	OrgID       string
	Name        string
	Description string
	SKU         string
	Barcode     string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Quantity    int
	Status      ItemStatus
	CategoryID  string
	CreatedBy   string
	UpdatedBy   string
	ImageURL    string
	CreatedAt   time.Time
	DeletedAt   *time.Time
}
