package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// ListByOrg filtra por rango de fechas inclusivo; cadena vacía = sin cota.
	ListByOrg(orgID, startDate, endDate string) ([]*entity.Sale, error)
}
