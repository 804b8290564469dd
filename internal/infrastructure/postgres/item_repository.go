package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, org_id, name, description, sku, barcode, price, cost, quantity, status, category_id, created_by, updated_by, image_url, created_at, deleted_at`

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, org_id, name, description, sku, barcode, price, cost, quantity, status, category_id, created_by, updated_by, image_url, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrgID, item.Name, item.Description, item.SKU, item.Barcode,
		item.Price, item.Cost, item.Quantity, item.Status, item.CategoryID,
		item.CreatedBy, item.UpdatedBy, item.ImageURL, item.CreatedAt, item.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID, incluyendo los que tienen borrado lógico.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.OrgID, &it.Name, &it.Description, &it.SKU, &it.Barcode,
		&it.Price, &it.Cost, &it.Quantity, &it.Status, &it.CategoryID,
		&it.CreatedBy, &it.UpdatedBy, &it.ImageURL, &it.CreatedAt, &it.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListByOrg lista los artículos de una organización sin borrado lógico, más recientes primero.
func (r *ItemRepo) ListByOrg(orgID string) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE org_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.OrgID, &it.Name, &it.Description, &it.SKU, &it.Barcode,
			&it.Price, &it.Cost, &it.Quantity, &it.Status, &it.CategoryID,
			&it.CreatedBy, &it.UpdatedBy, &it.ImageURL, &it.CreatedAt, &it.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Update actualiza un artículo existente, incluido el marcado de borrado lógico.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, sku = $4, barcode = $5, price = $6, cost = $7,
			quantity = $8, status = $9, category_id = $10, updated_by = $11, image_url = $12, deleted_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.SKU, item.Barcode, item.Price,
		item.Cost, item.Quantity, item.Status, item.CategoryID, item.UpdatedBy,
		item.ImageURL, item.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// ExistsByCategory verifica por existencia si algún artículo referencia la categoría.
func (r *ItemRepo) ExistsByCategory(categoryID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM items WHERE category_id = $1)`, categoryID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("items exist by category: %w", err)
	}
	return exists, nil
}
