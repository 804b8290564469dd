package usecase

import (
	"context"

	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// ItemTxRunner ejecuta mutaciones de catálogo dentro de una transacción: la
// escritura del artículo y su entrada de auditoría se confirman como una unidad.
type ItemTxRunner interface {
	RunItems(ctx context.Context, fn func(
		items repository.ItemRepository,
		history repository.ItemHistoryRepository,
	) error) error
}

// SaleTxRunner ejecuta la creación de ventas dentro de una transacción: la
// venta y su notificación opcional se confirman como una unidad.
type SaleTxRunner interface {
	RunSales(ctx context.Context, fn func(
		sales repository.SaleRepository,
		notifications repository.NotificationRepository,
	) error) error
}

// ReportPDFGenerator genera la representación PDF de un reporte. Summary es nil
// salvo para reportes de ventas.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *entity.Report, currency string, summary *dto.SalesSummaryResponse) ([]byte, error)
}
