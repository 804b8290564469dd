package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	ListByOrg(orgID string) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	// HasChildren verifica por existencia (no por conteo) si la categoría tiene
	// subcategorías.
	HasChildren(id string) (bool, error)
}
