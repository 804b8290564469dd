package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// ReportUseCase reportes guardados por organización y su exportación a PDF.
type ReportUseCase struct {
	reports  repository.ReportRepository
	sales    repository.SaleRepository
	settings repository.SettingsRepository
	pdf      ReportPDFGenerator
	access   *access.Service
}

func NewReportUseCase(
	reports repository.ReportRepository,
	sales repository.SaleRepository,
	settings repository.SettingsRepository,
	pdf ReportPDFGenerator,
	accessSvc *access.Service,
) *ReportUseCase {
	return &ReportUseCase{reports: reports, sales: sales, settings: settings, pdf: pdf, access: accessSvc}
}

// Create guarda un reporte. Data se persiste tal cual llega.
func (uc *ReportUseCase) Create(caller access.Caller, in dto.CreateReportRequest) (string, error) {
	acc, err := uc.access.HasAccessToOrg(caller, in.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}
	if in.Name == "" || !entity.ValidReportType(in.Type) {
		return "", domain.ErrInvalidInput
	}

	rpt := &entity.Report{
		ID:          uuid.New().String(),
		OrgID:       in.OrgID,
		Type:        in.Type,
		Name:        in.Name,
		Description: in.Description,
		DateRange:   in.DateRange,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   time.Now(),
		Data:        in.Data,
	}
	if err := uc.reports.Create(rpt); err != nil {
		return "", err
	}
	return rpt.ID, nil
}

// Get devuelve un reporte, o nil si no existe o el caller no tiene acceso.
func (uc *ReportUseCase) Get(caller access.Caller, id string) (*dto.ReportResponse, error) {
	rpt, err := uc.reports.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rpt == nil {
		return nil, nil
	}
	acc, err := uc.access.HasAccessToOrg(caller, rpt.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	return toReportResponse(rpt), nil
}

// List devuelve los reportes de la organización, más recientes primero; sin
// acceso degrada a lista vacía.
func (uc *ReportUseCase) List(caller access.Caller, orgID string) ([]*dto.ReportResponse, error) {
	acc, err := uc.access.HasAccessToOrg(caller, orgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return []*dto.ReportResponse{}, nil
	}
	reports, err := uc.reports.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, toReportResponse(r))
	}
	return out, nil
}

// Update aplica un patch parcial. El tipo del reporte no es editable.
func (uc *ReportUseCase) Update(caller access.Caller, in dto.UpdateReportRequest) (string, error) {
	rpt, err := uc.reports.GetByID(in.ID)
	if err != nil {
		return "", err
	}
	if rpt == nil {
		return "", domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, rpt.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}

	if in.Name != nil {
		if *in.Name == "" {
			return "", domain.ErrInvalidInput
		}
		rpt.Name = *in.Name
	}
	if in.Description != nil {
		rpt.Description = *in.Description
	}
	if in.DateRange != nil {
		rpt.DateRange = *in.DateRange
	}
	if in.Data != nil {
		rpt.Data = in.Data
	}

	if err := uc.reports.Update(rpt); err != nil {
		return "", err
	}
	return rpt.ID, nil
}

// Delete elimina un reporte. El borrado es físico.
func (uc *ReportUseCase) Delete(caller access.Caller, id string) error {
	rpt, err := uc.reports.GetByID(id)
	if err != nil {
		return err
	}
	if rpt == nil {
		return domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, rpt.OrgID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrUnauthorized
	}
	return uc.reports.Delete(id)
}

// ExportPDF genera el PDF de un reporte. Para reportes de ventas agrega el
// resumen del rango del reporte; la moneda sale de los ajustes de la
// organización, con PHP como valor por defecto.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, caller access.Caller, id string) ([]byte, error) {
	rpt, err := uc.reports.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rpt == nil {
		return nil, domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, rpt.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrUnauthorized
	}

	currency := "PHP"
	cfg, err := uc.settings.GetByOrg(rpt.OrgID)
	if err != nil {
		return nil, err
	}
	if cfg != nil && cfg.Currency != "" {
		currency = cfg.Currency
	}

	var summary *dto.SalesSummaryResponse
	if rpt.Type == entity.ReportSales {
		sales, err := uc.sales.ListByOrg(rpt.OrgID, rpt.DateRange.Start, rpt.DateRange.End)
		if err != nil {
			return nil, err
		}
		summary = dto.ZeroSalesSummary()
		for _, s := range sales {
			summary.TotalSales = summary.TotalSales.Add(s.Total)
			summary.TotalTax = summary.TotalTax.Add(s.Tax)
			summary.TotalDiscount = summary.TotalDiscount.Add(s.Discount)
			summary.NumberOfSales++
		}
	}

	return uc.pdf.GenerateReportPDF(ctx, rpt, currency, summary)
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	return &dto.ReportResponse{
		ID:          r.ID,
		OrgID:       r.OrgID,
		Type:        r.Type,
		Name:        r.Name,
		Description: r.Description,
		DateRange:   r.DateRange,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		Data:        r.Data,
	}
}
