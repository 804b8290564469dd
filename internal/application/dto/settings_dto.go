package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
)

// CreateSettingsRequest alta de ajustes de una organización (exactamente una vez).
type CreateSettingsRequest struct {
	OrgID                    string                 `json:"orgId"`
	LowStockThreshold        int                    `json:"lowStockThreshold"`
	DefaultTaxRate           decimal.Decimal        `json:"defaultTaxRate"`
	Currency                 string                 `json:"currency"`
	TimeZone                 string                 `json:"timeZone"`
	EnableLowStockAlerts     bool                   `json:"enableLowStockAlerts"`
	EnableSalesNotifications bool                   `json:"enableSalesNotifications"`
	EnableReportScheduling   bool                   `json:"enableReportScheduling"`
	ReportScheduleFrequency  entity.ReportFrequency `json:"reportScheduleFrequency"`
	LogoURL                  string                 `json:"logoUrl,omitempty"`
	TokenIdentifier          string                 `json:"tokenIdentifier"`
}

// UpdateSettingsRequest patch de campos completos de los ajustes.
type UpdateSettingsRequest struct {
	SettingsID               string                 `json:"settingsId"`
	LowStockThreshold        int                    `json:"lowStockThreshold"`
	DefaultTaxRate           decimal.Decimal        `json:"defaultTaxRate"`
	Currency                 string                 `json:"currency"`
	TimeZone                 string                 `json:"timeZone"`
	EnableLowStockAlerts     bool                   `json:"enableLowStockAlerts"`
	EnableSalesNotifications bool                   `json:"enableSalesNotifications"`
	EnableReportScheduling   bool                   `json:"enableReportScheduling"`
	ReportScheduleFrequency  entity.ReportFrequency `json:"reportScheduleFrequency"`
	LogoURL                  *string                `json:"logoUrl,omitempty"`
}

// SettingsResponse proyección de los ajustes.
type SettingsResponse struct {
	ID                       string                 `json:"id"`
	OrgID                    string                 `json:"orgId"`
	LowStockThreshold        int                    `json:"lowStockThreshold"`
	DefaultTaxRate           decimal.Decimal        `json:"defaultTaxRate"`
	Currency                 string                 `json:"currency"`
	TimeZone                 string                 `json:"timeZone"`
	EnableLowStockAlerts     bool                   `json:"enableLowStockAlerts"`
	EnableSalesNotifications bool                   `json:"enableSalesNotifications"`
	EnableReportScheduling   bool                   `json:"enableReportScheduling"`
	ReportScheduleFrequency  entity.ReportFrequency `json:"reportScheduleFrequency"`
	LogoURL                  string                 `json:"logoUrl,omitempty"`
	UpdatedBy                string                 `json:"updatedBy"`
	UpdatedAt                time.Time              `json:"updatedAt"`
}
