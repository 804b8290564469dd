package entity

import (
	"encoding/json"
	"time"
)

// HistoryAction acción registrada en la historia de un artículo.
type HistoryAction string

const (
	HistoryCreate HistoryAction = "create"
	HistoryUpdate HistoryAction = "update"
	HistoryDelete HistoryAction = "delete"
)

// ItemHistory entrada de auditoría de una mutación sobre un artículo.
// Es append-only: ningún componente modifica ni elimina entradas existentes.
// Changes es el payload opaco con los campos escritos en la mutación.
type ItemHistory struct {
	ID        string
	ItemID    string
	Action    HistoryAction
	Changes   json.RawMessage
	Timestamp time.Time
	UserID    string
}
