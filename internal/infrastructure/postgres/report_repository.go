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

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación sobre PostgreSQL (usable con pool o tx). El rango
// de fechas se aplana en dos columnas de texto ISO-8601.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const reportColumns = `id, org_id, type, name, description, date_range_start, date_range_end, created_by, created_at, data`

// Create persiste un nuevo reporte.
func (r *ReportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO reports (id, org_id, type, name, description, date_range_start, date_range_end, created_by, created_at, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.OrgID, report.Type, report.Name, report.Description,
		report.DateRange.Start, report.DateRange.End, report.CreatedBy,
		report.CreatedAt, report.Data,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetByID obtiene un reporte por ID.
func (r *ReportRepo) GetByID(id string) (*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	var rpt entity.Report
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rpt.ID, &rpt.OrgID, &rpt.Type, &rpt.Name, &rpt.Description,
		&rpt.DateRange.Start, &rpt.DateRange.End, &rpt.CreatedBy, &rpt.CreatedAt, &rpt.Data,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return &rpt, nil
}

// ListByOrg lista los reportes de una organización, más recientes primero.
func (r *ReportRepo) ListByOrg(orgID string) ([]*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE org_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []*entity.Report
	for rows.Next() {
		var rpt entity.Report
		if err := rows.Scan(
			&rpt.ID, &rpt.OrgID, &rpt.Type, &rpt.Name, &rpt.Description,
			&rpt.DateRange.Start, &rpt.DateRange.End, &rpt.CreatedBy, &rpt.CreatedAt, &rpt.Data,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, &rpt)
	}
	return reports, rows.Err()
}

// Update actualiza un reporte existente. El tipo no es editable.
func (r *ReportRepo) Update(report *entity.Report) error {
	query := `
		UPDATE reports SET name = $2, description = $3, date_range_start = $4, date_range_end = $5, data = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		report.ID, report.Name, report.Description,
		report.DateRange.Start, report.DateRange.End, report.Data,
	)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

// Delete elimina un reporte.
func (r *ReportRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}
