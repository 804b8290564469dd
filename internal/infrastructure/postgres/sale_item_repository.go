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

var _ repository.SaleItemRepository = (*SaleItemRepo)(nil)

// SaleItemRepo implementación sobre PostgreSQL (usable con pool o tx).
type SaleItemRepo struct {
	q Querier
}

// NewSaleItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleItemRepository(q Querier) *SaleItemRepo {
	return &SaleItemRepo{q: q}
}

// Create persiste una nueva línea de venta.
func (r *SaleItemRepo) Create(saleItem *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, item_id, quantity, price, discount)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		saleItem.ID, saleItem.SaleID, saleItem.ItemID, saleItem.Quantity,
		saleItem.Price, saleItem.Discount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea de venta por ID.
func (r *SaleItemRepo) GetByID(id string) (*entity.SaleItem, error) {
	query := `SELECT id, sale_id, item_id, quantity, price, discount FROM sale_items WHERE id = $1`
	var l entity.SaleItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.SaleID, &l.ItemID, &l.Quantity, &l.Price, &l.Discount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale item: %w", err)
	}
	return &l, nil
}

// ListBySale lista las líneas de una venta.
func (r *SaleItemRepo) ListBySale(saleID string) ([]*entity.SaleItem, error) {
	query := `SELECT id, sale_id, item_id, quantity, price, discount FROM sale_items WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var lines []*entity.SaleItem
	for rows.Next() {
		var l entity.SaleItem
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ItemID, &l.Quantity, &l.Price, &l.Discount); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// Update actualiza una línea de venta existente.
func (r *SaleItemRepo) Update(saleItem *entity.SaleItem) error {
	query := `UPDATE sale_items SET quantity = $2, price = $3, discount = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		saleItem.ID, saleItem.Quantity, saleItem.Price, saleItem.Discount,
	)
	if err != nil {
		return fmt.Errorf("update sale item: %w", err)
	}
	return nil
}

// Delete elimina una línea de venta.
func (r *SaleItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale item: %w", err)
	}
	return nil
}
