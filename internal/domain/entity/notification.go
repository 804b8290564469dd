package entity

// NotificationType tipo de alerta para el usuario.
type NotificationType string

const (
	NotificationLowStock    NotificationType = "low_stock"
	NotificationNewSale     NotificationType = "new_sale"
	NotificationReportReady NotificationType = "report_ready"
)

// ValidNotificationType indica si t es uno de los tipos conocidos.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationLowStock, NotificationNewSale, NotificationReportReady:
		return true
	}
	return false
}

// NotificationTab pestaña del buzón usada por clearNotifications.
type NotificationTab string

const (
	TabImportant NotificationTab = "important"
	TabOther     NotificationTab = "other"
	TabSnoozed   NotificationTab = "snoozed"
	TabCleared   NotificationTab = "cleared"
)

// Notification alerta dirigida a un usuario. CreatedAt es ISO-8601 en texto.
type Notification struct {
	ID        string
	OrgID     string
	UserID    string // destinatario
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt string
}
