package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// ReportRepository define el puerto de persistencia para Report (DIP).
type ReportRepository interface {
	Create(report *entity.Report) error
	GetByID(id string) (*entity.Report, error)
	ListByOrg(orgID string) ([]*entity.Report, error)
	Update(report *entity.Report) error
	Delete(id string) error
}
