package entity

import (
	"encoding/json"
	"time"
)

// ReportType tipo de reporte.
type ReportType string

const (
	ReportSales     ReportType = "sales"
	ReportInventory ReportType = "inventory"
	ReportForecast  ReportType = "forecast"
)

// ValidReportType indica si t es uno de los tipos conocidos.
func ValidReportType(t ReportType) bool {
	switch t {
	case ReportSales, ReportInventory, ReportForecast:
		return true
	}
	return false
}

// DateRange rango de fechas ISO-8601 de un reporte.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Report reporte generado para una organización. Data es un payload opaco:
// esta capa no produce ni interpreta su contenido.
type Report struct {
	ID          string
	OrgID       string
	Type        ReportType
	Name        string
	Description string
	DateRange   DateRange
	CreatedBy   string
	CreatedAt   time.Time
	Data        json.RawMessage
}
