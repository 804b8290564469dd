package dto

import (
	"encoding/json"
	"time"

	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
)

// CreateReportRequest alta de un reporte; Data es un payload opaco.
type CreateReportRequest struct {
	OrgID       string            `json:"orgId"`
	Type        entity.ReportType `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	DateRange   entity.DateRange  `json:"dateRange"`
	CreatedBy   string            `json:"createdBy"`
	Data        json.RawMessage   `json:"data"`
}

// UpdateReportRequest patch parcial de un reporte.
type UpdateReportRequest struct {
	ID          string            `json:"id"`
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	DateRange   *entity.DateRange `json:"dateRange,omitempty"`
	Data        json.RawMessage   `json:"data,omitempty"`
}

// ReportResponse proyección de un reporte.
type ReportResponse struct {
	ID          string            `json:"id"`
	OrgID       string            `json:"orgId"`
	Type        entity.ReportType `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	DateRange   entity.DateRange  `json:"dateRange"`
	CreatedBy   string            `json:"createdBy"`
	CreatedAt   time.Time         `json:"createdAt"`
	Data        json.RawMessage   `json:"data"`
}
