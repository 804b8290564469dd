package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// ItemHistoryRepository define el puerto del registro de auditoría de artículos.
// Es append-only a propósito: el puerto no expone update ni delete.
type ItemHistoryRepository interface {
	Append(history *entity.ItemHistory) error
	// ListByItem devuelve la historia del artículo, más reciente primero.
	ListByItem(itemID string) ([]*entity.ItemHistory, error)
}
