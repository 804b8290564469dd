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

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación sobre PostgreSQL (usable con pool o tx). La
// unicidad por organización la garantiza el índice único sobre org_id.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

const settingsColumns = `id, org_id, low_stock_threshold, default_tax_rate, currency, time_zone,
		enable_low_stock_alerts, enable_sales_notifications, enable_report_scheduling,
		report_schedule_frequency, logo_url, token_identifier, updated_by, updated_at`

// Create persiste los ajustes de una organización. Devuelve ErrDuplicate si la
// organización ya tiene ajustes.
func (r *SettingsRepo) Create(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (id, org_id, low_stock_threshold, default_tax_rate, currency, time_zone,
			enable_low_stock_alerts, enable_sales_notifications, enable_report_scheduling,
			report_schedule_frequency, logo_url, token_identifier, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.OrgID, settings.LowStockThreshold, settings.DefaultTaxRate,
		settings.Currency, settings.TimeZone, settings.EnableLowStockAlerts,
		settings.EnableSalesNotifications, settings.EnableReportScheduling,
		settings.ReportScheduleFrequency, settings.LogoURL, settings.TokenIdentifier,
		settings.UpdatedBy, settings.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// GetByID obtiene ajustes por ID.
func (r *SettingsRepo) GetByID(id string) (*entity.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByOrg obtiene los ajustes de una organización.
func (r *SettingsRepo) GetByOrg(orgID string) (*entity.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE org_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, orgID))
}

// Update actualiza los ajustes existentes.
func (r *SettingsRepo) Update(settings *entity.Settings) error {
	query := `
		UPDATE settings SET low_stock_threshold = $2, default_tax_rate = $3, currency = $4,
			time_zone = $5, enable_low_stock_alerts = $6, enable_sales_notifications = $7,
			enable_report_scheduling = $8, report_schedule_frequency = $9, logo_url = $10,
			updated_by = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.LowStockThreshold, settings.DefaultTaxRate, settings.Currency,
		settings.TimeZone, settings.EnableLowStockAlerts, settings.EnableSalesNotifications,
		settings.EnableReportScheduling, settings.ReportScheduleFrequency, settings.LogoURL,
		settings.UpdatedBy, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func (r *SettingsRepo) scanOne(row pgx.Row) (*entity.Settings, error) {
	var s entity.Settings
	err := row.Scan(
		&s.ID, &s.OrgID, &s.LowStockThreshold, &s.DefaultTaxRate, &s.Currency, &s.TimeZone,
		&s.EnableLowStockAlerts, &s.EnableSalesNotifications, &s.EnableReportScheduling,
		&s.ReportScheduleFrequency, &s.LogoURL, &s.TokenIdentifier, &s.UpdatedBy, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}
