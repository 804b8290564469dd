package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// NotificationUseCase alertas por usuario. Los ajustes de la organización
// actúan dos veces: suprimen la creación de alertas deshabilitadas y las
// ocultan en lectura aunque ya estén persistidas.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	settings      repository.SettingsRepository
	access        *access.Service
}

func NewNotificationUseCase(
	notifications repository.NotificationRepository,
	settings repository.SettingsRepository,
	accessSvc *access.Service,
) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, settings: settings, access: accessSvc}
}

// Create crea una alerta. Si el tipo está deshabilitado en los ajustes de la
// organización la creación se suprime en silencio y devuelve id vacío.
func (uc *NotificationUseCase) Create(caller access.Caller, in dto.CreateNotificationRequest) (string, error) {
	acc, err := uc.access.HasAccessToOrg(caller, in.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}
	if in.Message == "" || !entity.ValidNotificationType(in.Type) {
		return "", domain.ErrInvalidInput
	}

	cfg, err := uc.settings.GetByOrg(in.OrgID)
	if err != nil {
		return "", err
	}
	if suppressed(cfg, in.Type) {
		return "", nil
	}

	createdAt := in.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		OrgID:     in.OrgID,
		UserID:    in.UserID,
		Message:   in.Message,
		Type:      in.Type,
		IsRead:    in.IsRead,
		CreatedAt: createdAt,
	}
	if err := uc.notifications.Create(n); err != nil {
		return "", err
	}
	return n.ID, nil
}

// Get devuelve una alerta, o nil si no existe o el caller no tiene acceso a su
// organización.
func (uc *NotificationUseCase) Get(caller access.Caller, id string) (*dto.NotificationResponse, error) {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	acc, err := uc.access.HasAccessToOrg(caller, n.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	return toNotificationResponse(n), nil
}

// List devuelve las alertas visibles del caller, más recientes primero. Las
// alertas de tipos deshabilitados o de organizaciones a las que ya no tiene
// acceso quedan fuera.
func (uc *NotificationUseCase) List(caller access.Caller) ([]*dto.NotificationResponse, error) {
	visible, err := uc.listVisible(caller)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(visible))
	for _, n := range visible {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// UnreadCount cuenta las alertas visibles sin leer del caller.
func (uc *NotificationUseCase) UnreadCount(caller access.Caller) (int, error) {
	visible, err := uc.listVisible(caller)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range visible {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkRead marca una alerta como leída.
func (uc *NotificationUseCase) MarkRead(caller access.Caller, id string) error {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, n.OrgID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrUnauthorized
	}
	return uc.notifications.MarkRead(id)
}

// Delete elimina una alerta. El borrado es físico.
func (uc *NotificationUseCase) Delete(caller access.Caller, id string) error {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, n.OrgID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrUnauthorized
	}
	return uc.notifications.Delete(id)
}

// Clear despeja una pestaña del panel de alertas. "cleared" elimina las ya
// leídas; el resto de pestañas marca como leídas las emparejadas. El filtro
// "unread" restringe a alertas sin leer. Devuelve cuántas emparejó.
func (uc *NotificationUseCase) Clear(caller access.Caller, in dto.ClearNotificationsRequest) (int, error) {
	visible, err := uc.listVisible(caller)
	if err != nil {
		return 0, err
	}

	matched := make([]*entity.Notification, 0, len(visible))
	for _, n := range visible {
		switch in.Tab {
		case entity.TabImportant:
			if n.Type != entity.NotificationLowStock {
				continue
			}
		case entity.TabOther:
			if n.Type != entity.NotificationNewSale {
				continue
			}
		case entity.TabCleared:
			if !n.IsRead {
				continue
			}
		default:
			if n.IsRead {
				continue
			}
		}
		if in.Filter == "unread" && n.IsRead {
			continue
		}
		matched = append(matched, n)
	}

	// El conteo cubre todo lo emparejado por la pestaña, leído o no;
	// re-marcar una alerta ya leída es idempotente.
	count := 0
	for _, n := range matched {
		if in.Tab == entity.TabCleared {
			if err := uc.notifications.Delete(n.ID); err != nil {
				return count, err
			}
		} else if err := uc.notifications.MarkRead(n.ID); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// listVisible resuelve al caller y aplica la visibilidad por organización:
// acceso vigente y tipo habilitado en los ajustes. Los ajustes se consultan
// una sola vez por organización.
func (uc *NotificationUseCase) listVisible(caller access.Caller) ([]*entity.Notification, error) {
	usr, err := uc.access.ResolveUser(caller)
	if err != nil {
		return nil, err
	}
	all, err := uc.notifications.ListByUser(usr.ID)
	if err != nil {
		return nil, err
	}

	orgAccess := map[string]bool{}
	orgSettings := map[string]*entity.Settings{}
	visible := make([]*entity.Notification, 0, len(all))
	for _, n := range all {
		allowed, ok := orgAccess[n.OrgID]
		if !ok {
			acc, err := uc.access.HasAccessToOrg(caller, n.OrgID)
			if err != nil {
				return nil, err
			}
			allowed = acc != nil
			orgAccess[n.OrgID] = allowed
			if allowed {
				cfg, err := uc.settings.GetByOrg(n.OrgID)
				if err != nil {
					return nil, err
				}
				orgSettings[n.OrgID] = cfg
			}
		}
		if !allowed || suppressed(orgSettings[n.OrgID], n.Type) {
			continue
		}
		visible = append(visible, n)
	}
	return visible, nil
}

// suppressed indica si los ajustes deshabilitan el tipo de alerta. Sin ajustes
// persistidos rigen los valores por defecto, que habilitan todo.
func suppressed(cfg *entity.Settings, t entity.NotificationType) bool {
	if cfg == nil {
		return false
	}
	switch t {
	case entity.NotificationLowStock:
		return !cfg.EnableLowStockAlerts
	case entity.NotificationNewSale:
		return !cfg.EnableSalesNotifications
	}
	return false
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        n.ID,
		OrgID:     n.OrgID,
		UserID:    n.UserID,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
