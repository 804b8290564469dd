package dto

import (
	"github.com/shopspring/decimal"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
)

// CreateSaleRequest datos para registrar una venta. Si Tax llega en cero y la
// organización tiene tasa por defecto distinta de cero, el impuesto se recalcula.
type CreateSaleRequest struct {
	OrgID         string            `json:"orgId"`
	UserID        string            `json:"userId"`
	Date          string            `json:"date"`
	Total         decimal.Decimal   `json:"total"`
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount,omitempty"`
	PaymentMethod string            `json:"paymentMethod"`
	Status        entity.SaleStatus `json:"status"`
}

// ListSalesRequest filtro de listado; cadena vacía = sin cota.
type ListSalesRequest struct {
	OrgID     string `json:"orgId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// SaleResponse proyección de una venta.
type SaleResponse struct {
	ID            string            `json:"id"`
	OrgID         string            `json:"orgId"`
	UserID        string            `json:"userId"`
	Date          string            `json:"date"`
	Total         decimal.Decimal   `json:"total"`
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount"`
	PaymentMethod string            `json:"paymentMethod"`
	Status        entity.SaleStatus `json:"status"`
}

// SalesSummaryResponse agregado sobre el conjunto filtrado; un rango vacío
// produce el resumen en ceros, nunca un error.
type SalesSummaryResponse struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	NumberOfSales int             `json:"numberOfSales"`
}

// ZeroSalesSummary acumulador neutro del resumen de ventas.
func ZeroSalesSummary() *SalesSummaryResponse {
	return &SalesSummaryResponse{
		TotalSales:    decimal.Zero,
		TotalTax:      decimal.Zero,
		TotalDiscount: decimal.Zero,
	}
}
