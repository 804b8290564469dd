package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// SaleItemRepository define el puerto de persistencia para SaleItem (DIP).
type SaleItemRepository interface {
	Create(saleItem *entity.SaleItem) error
	GetByID(id string) (*entity.SaleItem, error)
	ListBySale(saleID string) ([]*entity.SaleItem, error)
	Update(saleItem *entity.SaleItem) error
	Delete(id string) error
}
