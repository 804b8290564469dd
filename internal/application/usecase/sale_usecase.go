package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// SaleUseCase libro de ventas. El registro de una venta y su alerta de venta
// nueva van en la misma transacción; la alerta se omite si la organización la
// tiene deshabilitada.
type SaleUseCase struct {
	tx       SaleTxRunner
	sales    repository.SaleRepository
	settings repository.SettingsRepository
	access   *access.Service
}

func NewSaleUseCase(
	tx SaleTxRunner,
	sales repository.SaleRepository,
	settings repository.SettingsRepository,
	accessSvc *access.Service,
) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales, settings: settings, access: accessSvc}
}

// Create registra una venta. Si Tax llega en cero y la organización tiene tasa
// por defecto distinta de cero, el impuesto se recalcula como
// total * tasa / 100. No descuenta stock del inventario.
func (uc *SaleUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateSaleRequest) (string, error) {
	acc, err := uc.access.HasAccessToOrg(caller, in.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}
	if in.Date == "" || !entity.ValidSaleStatus(in.Status) {
		return "", domain.ErrInvalidInput
	}
	if in.Total.IsNegative() || in.Tax.IsNegative() || in.Discount.IsNegative() {
		return "", domain.ErrInvalidInput
	}

	cfg, err := uc.settings.GetByOrg(in.OrgID)
	if err != nil {
		return "", err
	}

	tax := in.Tax
	if tax.IsZero() && cfg != nil && !cfg.DefaultTaxRate.IsZero() {
		tax = in.Total.Mul(cfg.DefaultTaxRate).Div(decimal.NewFromInt(100))
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		OrgID:         in.OrgID,
		UserID:        in.UserID,
		Date:          in.Date,
		Total:         in.Total,
		Tax:           tax,
		Discount:      in.Discount,
		PaymentMethod: in.PaymentMethod,
		Status:        in.Status,
		CreatedAt:     time.Now(),
	}

	// Sin registro de ajustes no hay notificación; la moneda del mensaje
	// sale del mismo registro.
	currency := ""
	notify := false
	if cfg != nil {
		currency = cfg.Currency
		notify = cfg.EnableSalesNotifications
	}

	err = uc.tx.RunSales(ctx, func(sales repository.SaleRepository, notifications repository.NotificationRepository) error {
		if err := sales.Create(sale); err != nil {
			return err
		}
		if !notify {
			return nil
		}
		return notifications.Create(&entity.Notification{
			ID:        uuid.New().String(),
			OrgID:     in.OrgID,
			UserID:    in.UserID,
			Message:   fmt.Sprintf("New sale created for %s %s", in.Total.String(), currency),
			Type:      entity.NotificationNewSale,
			IsRead:    false,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
	})
	if err != nil {
		return "", err
	}
	return sale.ID, nil
}

// List devuelve las ventas de la organización dentro del rango de fechas;
// cadena vacía = sin cota. Sin acceso degrada a lista vacía.
func (uc *SaleUseCase) List(caller access.Caller, in dto.ListSalesRequest) ([]*dto.SaleResponse, error) {
	acc, err := uc.access.HasAccessToOrg(caller, in.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return []*dto.SaleResponse{}, nil
	}
	sales, err := uc.sales.ListByOrg(in.OrgID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Get devuelve una venta, o nil si no existe o el caller no tiene acceso.
func (uc *SaleUseCase) Get(caller access.Caller, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	acc, err := uc.access.HasAccessToOrg(caller, sale.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// GetSummary agrega totales, impuestos, descuentos y conteo sobre el rango
// filtrado. Un rango sin ventas produce el resumen en ceros.
func (uc *SaleUseCase) GetSummary(caller access.Caller, in dto.ListSalesRequest) (*dto.SalesSummaryResponse, error) {
	acc, err := uc.access.HasAccessToOrg(caller, in.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return dto.ZeroSalesSummary(), nil
	}
	sales, err := uc.sales.ListByOrg(in.OrgID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	summary := dto.ZeroSalesSummary()
	for _, s := range sales {
		summary.TotalSales = summary.TotalSales.Add(s.Total)
		summary.TotalTax = summary.TotalTax.Add(s.Tax)
		summary.TotalDiscount = summary.TotalDiscount.Add(s.Discount)
		summary.NumberOfSales++
	}
	return summary, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		OrgID:         s.OrgID,
		UserID:        s.UserID,
		Date:          s.Date,
		Total:         s.Total,
		Tax:           s.Tax,
		Discount:      s.Discount,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
	}
}
