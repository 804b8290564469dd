package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	ListByUser(userID string) ([]*entity.Notification, error)
	MarkRead(id string) error
	Delete(id string) error
}
