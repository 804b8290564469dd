package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	// GetByID devuelve el artículo aunque tenga borrado lógico; el caso de uso
	// decide si lo expone.
	GetByID(id string) (*entity.Item, error)
	// ListByOrg excluye artículos con borrado lógico, más recientes primero.
	ListByOrg(orgID string) ([]*entity.Item, error)
	Update(item *entity.Item) error
	// ExistsByCategory verifica por existencia si algún artículo referencia la categoría.
	ExistsByCategory(categoryID string) (bool, error)
}
