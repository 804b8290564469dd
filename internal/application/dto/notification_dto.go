package dto

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// CreateNotificationRequest datos para crear una alerta. La creación puede
// suprimirse silenciosamente según los ajustes de la organización.
type CreateNotificationRequest struct {
	OrgID     string                  `json:"orgId"`
	UserID    string                  `json:"userId"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	IsRead    bool                    `json:"isRead"`
	CreatedAt string                  `json:"createdAt"`
}

// ClearNotificationsRequest selector de pestaña y subfiltro opcional "unread".
type ClearNotificationsRequest struct {
	Tab    entity.NotificationTab `json:"tab"`
	Filter string                 `json:"filter,omitempty"`
}

// NotificationResponse proyección de una alerta.
type NotificationResponse struct {
	ID        string                  `json:"id"`
	OrgID     string                  `json:"orgId"`
	UserID    string                  `json:"userId"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	IsRead    bool                    `json:"isRead"`
	CreatedAt string                  `json:"createdAt"`
}
