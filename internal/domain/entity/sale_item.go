package entity

import "github.com/shopspring/decimal"

// SaleItem línea de una venta. No hay cascada referencial más allá de la
// verificación de existencia de la venta al crearla.
type SaleItem struct {
	ID       string
	SaleID   string
	ItemID   string
	Quantity int
	Price    decimal.Decimal
	Discount decimal.Decimal
}
