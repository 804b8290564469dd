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

// SettingsUseCase ajustes por organización: exactamente un registro por OrgID.
type SettingsUseCase struct {
	settings repository.SettingsRepository
	users    repository.UserRepository
	access   *access.Service
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settings repository.SettingsRepository, users repository.UserRepository, accessSvc *access.Service) *SettingsUseCase {
	return &SettingsUseCase{settings: settings, users: users, access: accessSvc}
}

// CreateSettings crea los ajustes de una organización. Falla con
// domain.ErrSettingsExist si ya hay un registro para ese OrgID.
func (uc *SettingsUseCase) CreateSettings(in dto.CreateSettingsRequest) (string, error) {
	if in.OrgID == "" || !entity.ValidReportFrequency(in.ReportScheduleFrequency) {
		return "", domain.ErrInvalidInput
	}
	existing, err := uc.settings.GetByOrg(in.OrgID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrSettingsExist
	}

	// El creador puede no existir todavía: el proveedor de identidad no
	// garantiza el orden entre user.created y organization.created.
	var updatedBy string
	if in.TokenIdentifier != "" {
		creator, err := uc.users.GetByTokenIdentifier(in.TokenIdentifier)
		if err != nil {
			return "", err
		}
		if creator != nil {
			updatedBy = creator.ID
		}
	}

	s := &entity.Settings{
		ID:                       uuid.New().String(),
		OrgID:                    in.OrgID,
		LowStockThreshold:        in.LowStockThreshold,
		DefaultTaxRate:           in.DefaultTaxRate,
		Currency:                 in.Currency,
		TimeZone:                 in.TimeZone,
		EnableLowStockAlerts:     in.EnableLowStockAlerts,
		EnableSalesNotifications: in.EnableSalesNotifications,
		EnableReportScheduling:   in.EnableReportScheduling,
		ReportScheduleFrequency:  in.ReportScheduleFrequency,
		LogoURL:                  in.LogoURL,
		TokenIdentifier:          in.TokenIdentifier,
		UpdatedBy:                updatedBy,
		UpdatedAt:                time.Now(),
	}
	if err := uc.settings.Create(s); err != nil {
		return "", err
	}
	return s.ID, nil
}

// CreateDefaults crea los ajustes por defecto de una organización recién creada.
func (uc *SettingsUseCase) CreateDefaults(orgID, tokenIdentifier string) (string, error) {
	d := entity.DefaultSettings(orgID, tokenIdentifier)
	return uc.CreateSettings(dto.CreateSettingsRequest{
		OrgID:                    d.OrgID,
		LowStockThreshold:        d.LowStockThreshold,
		DefaultTaxRate:           d.DefaultTaxRate,
		Currency:                 d.Currency,
		TimeZone:                 d.TimeZone,
		EnableLowStockAlerts:     d.EnableLowStockAlerts,
		EnableSalesNotifications: d.EnableSalesNotifications,
		EnableReportScheduling:   d.EnableReportScheduling,
		ReportScheduleFrequency:  d.ReportScheduleFrequency,
		TokenIdentifier:          d.TokenIdentifier,
	})
}

// GetSettings devuelve los ajustes de la organización. Solo exige un caller
// autenticado, no membresía en la organización (comportamiento heredado,
// documentado en DESIGN.md).
func (uc *SettingsUseCase) GetSettings(caller access.Caller, orgID string) (*dto.SettingsResponse, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	s, err := uc.settings.GetByOrg(orgID)
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// UpdateSettings aplica el patch de campos completos y estampa UpdatedBy y
// UpdatedAt con el usuario resuelto del caller.
func (uc *SettingsUseCase) UpdateSettings(caller access.Caller, in dto.UpdateSettingsRequest) (string, error) {
	me, err := uc.access.ResolveUser(caller)
	if err != nil {
		return "", err
	}
	if !entity.ValidReportFrequency(in.ReportScheduleFrequency) {
		return "", domain.ErrInvalidInput
	}
	s, err := uc.settings.GetByID(in.SettingsID)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", domain.ErrNotFound
	}

	s.LowStockThreshold = in.LowStockThreshold
	s.DefaultTaxRate = in.DefaultTaxRate
	s.Currency = in.Currency
	s.TimeZone = in.TimeZone
	s.EnableLowStockAlerts = in.EnableLowStockAlerts
	s.EnableSalesNotifications = in.EnableSalesNotifications
	s.EnableReportScheduling = in.EnableReportScheduling
	s.ReportScheduleFrequency = in.ReportScheduleFrequency
	if in.LogoURL != nil {
		s.LogoURL = *in.LogoURL
	}
	s.UpdatedBy = me.ID
	s.UpdatedAt = time.Now()

	if err := uc.settings.Update(s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingsResponse{
		ID:                       s.ID,
		OrgID:                    s.OrgID,
		LowStockThreshold:        s.LowStockThreshold,
		DefaultTaxRate:           s.DefaultTaxRate,
		Currency:                 s.Currency,
		TimeZone:                 s.TimeZone,
		EnableLowStockAlerts:     s.EnableLowStockAlerts,
		EnableSalesNotifications: s.EnableSalesNotifications,
		EnableReportScheduling:   s.EnableReportScheduling,
		ReportScheduleFrequency:  s.ReportScheduleFrequency,
		LogoURL:                  s.LogoURL,
		UpdatedBy:                s.UpdatedBy,
		UpdatedAt:                s.UpdatedAt,
	}
}
