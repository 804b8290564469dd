package postgres

import (
	"context"
	"fmt"

	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

var _ repository.ItemHistoryRepository = (*ItemHistoryRepo)(nil)

// ItemHistoryRepo implementación sobre PostgreSQL (usable con pool o tx). La
// tabla es append-only: este adaptador nunca ejecuta UPDATE ni DELETE.
type ItemHistoryRepo struct {
	q Querier
}

// NewItemHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemHistoryRepository(q Querier) *ItemHistoryRepo {
	return &ItemHistoryRepo{q: q}
}

// Append persiste una entrada de historia.
func (r *ItemHistoryRepo) Append(history *entity.ItemHistory) error {
	query := `
		INSERT INTO item_history (id, item_id, action, changes, timestamp, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		history.ID, history.ItemID, history.Action, history.Changes,
		history.Timestamp, history.UserID,
	)
	if err != nil {
		return fmt.Errorf("insert item history: %w", err)
	}
	return nil
}

// ListByItem devuelve la historia del artículo, más reciente primero.
func (r *ItemHistoryRepo) ListByItem(itemID string) ([]*entity.ItemHistory, error) {
	query := `
		SELECT id, item_id, action, changes, timestamp, user_id
		FROM item_history WHERE item_id = $1 ORDER BY timestamp DESC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item history: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ItemHistory
	for rows.Next() {
		var h entity.ItemHistory
		if err := rows.Scan(&h.ID, &h.ItemID, &h.Action, &h.Changes, &h.Timestamp, &h.UserID); err != nil {
			return nil, fmt.Errorf("scan item history: %w", err)
		}
		entries = append(entries, &h)
	}
	return entries, rows.Err()
}
