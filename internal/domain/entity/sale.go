package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus estado de una venta.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SaleRefunded  SaleStatus = "refunded"
)

// ValidSaleStatus indica si s es uno de los estados conocidos.
func ValidSaleStatus(s SaleStatus) bool {
	return s == SaleCompleted || s == SaleRefunded
}

// Sale representa una transacción de venta. Date es ISO-8601 en texto: los
// filtros por rango de fechas comparan lexicográficamente, con cadena vacía
// como cota abierta. Discount cero significa sin descuento.
type Sale struct {
	ID            string
	OrgID         string
	UserID        string // quién registró la venta
	Date          string
	Total         decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	PaymentMethod string
	Status        SaleStatus
	CreatedAt     time.Time
}
