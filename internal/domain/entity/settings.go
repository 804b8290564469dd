package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFrequency frecuencia de reportes programados.
type ReportFrequency string

const (
	FrequencyDaily   ReportFrequency = "daily"
	FrequencyWeekly  ReportFrequency = "weekly"
	FrequencyMonthly ReportFrequency = "monthly"
)

// ValidReportFrequency indica si f es una de las frecuencias conocidas.
func ValidReportFrequency(f ReportFrequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Settings configuración por organización. A lo sumo un registro por OrgID.
// DefaultTaxRate está en puntos porcentuales (7.5 = 7.5%).
type Settings struct {
	ID                        string
	OrgID                     string
	LowStockThreshold         int
	DefaultTaxRate            decimal.Decimal
	Currency                  string
	TimeZone                  string
	EnableLowStockAlerts      bool
	EnableSalesNotifications  bool
	EnableReportScheduling    bool
	ReportScheduleFrequency   ReportFrequency
	LogoURL                   string
	TokenIdentifier           string // token identifier del creador
	UpdatedBy                 string
	UpdatedAt                 time.Time
}

// DefaultSettings construye los ajustes por defecto que se crean junto con la
// organización.
func DefaultSettings(orgID, tokenIdentifier string) *Settings {
	return &Settings{
		OrgID:                    orgID,
		LowStockThreshold:        10,
		DefaultTaxRate:           decimal.Zero,
		Currency:                 "PHP",
		TimeZone:                 "UTC",
		EnableLowStockAlerts:     true,
		EnableSalesNotifications: true,
		EnableReportScheduling:   false,
		ReportScheduleFrequency:  FrequencyWeekly,
		TokenIdentifier:          tokenIdentifier,
	}
}
