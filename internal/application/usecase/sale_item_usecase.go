package usecase

import (
	"github.com/google/uuid"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// SaleItemUseCase líneas de venta. El acceso siempre se resuelve a través de
// la venta madre; una línea no conoce su organización por sí misma.
type SaleItemUseCase struct {
	saleItems repository.SaleItemRepository
	sales     repository.SaleRepository
	items     repository.ItemRepository
	access    *access.Service
}

func NewSaleItemUseCase(
	saleItems repository.SaleItemRepository,
	sales repository.SaleRepository,
	items repository.ItemRepository,
	accessSvc *access.Service,
) *SaleItemUseCase {
	return &SaleItemUseCase{saleItems: saleItems, sales: sales, items: items, access: accessSvc}
}

// Create añade una línea a una venta existente. No valida que el artículo
// pertenezca a la misma organización que la venta.
func (uc *SaleItemUseCase) Create(caller access.Caller, in dto.CreateSaleItemRequest) (string, error) {
	sale, err := uc.sales.GetByID(in.SaleID)
	if err != nil {
		return "", err
	}
	if sale == nil {
		return "", domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, sale.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}
	if in.Quantity <= 0 || in.Price.IsNegative() || in.Discount.IsNegative() {
		return "", domain.ErrInvalidInput
	}

	line := &entity.SaleItem{
		ID:       uuid.New().String(),
		SaleID:   in.SaleID,
		ItemID:   in.ItemID,
		Quantity: in.Quantity,
		Price:    in.Price,
		Discount: in.Discount,
	}
	if err := uc.saleItems.Create(line); err != nil {
		return "", err
	}
	return line.ID, nil
}

// Get devuelve una línea de venta, o nil si no existe, si la venta madre ya
// no existe o si el caller no tiene acceso a la organización de la venta.
func (uc *SaleItemUseCase) Get(caller access.Caller, id string) (*dto.SaleItemResponse, error) {
	line, err := uc.saleItems.GetByID(id)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, nil
	}
	sale, err := uc.sales.GetByID(line.SaleID)
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
	return toSaleItemResponse(line), nil
}

// List devuelve las líneas de una venta; sin acceso o venta inexistente
// degrada a lista vacía.
func (uc *SaleItemUseCase) List(caller access.Caller, saleID string) ([]*dto.SaleItemResponse, error) {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return []*dto.SaleItemResponse{}, nil
	}
	acc, err := uc.access.HasAccessToOrg(caller, sale.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return []*dto.SaleItemResponse{}, nil
	}
	lines, err := uc.saleItems.ListBySale(saleID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, toSaleItemResponse(l))
	}
	return out, nil
}

// ListWithDetails devuelve las líneas con nombre y SKU del artículo. Item va
// en nil cuando el artículo referenciado ya no existe.
func (uc *SaleItemUseCase) ListWithDetails(caller access.Caller, saleID string) ([]*dto.SaleItemWithDetailsResponse, error) {
	lines, err := uc.List(caller, saleID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleItemWithDetailsResponse, 0, len(lines))
	for _, l := range lines {
		entry := &dto.SaleItemWithDetailsResponse{SaleItemResponse: *l}
		item, err := uc.items.GetByID(l.ItemID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			entry.Item = &dto.SaleItemDetail{Name: item.Name, SKU: item.SKU}
		}
		out = append(out, entry)
	}
	return out, nil
}

// Update aplica un patch parcial a una línea de venta.
func (uc *SaleItemUseCase) Update(caller access.Caller, in dto.UpdateSaleItemRequest) (string, error) {
	line, sale, err := uc.resolve(in.ID)
	if err != nil {
		return "", err
	}
	acc, err := uc.access.HasAccessToOrg(caller, sale.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}

	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return "", domain.ErrInvalidInput
		}
		line.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return "", domain.ErrInvalidInput
		}
		line.Price = *in.Price
	}
	if in.Discount != nil {
		if in.Discount.IsNegative() {
			return "", domain.ErrInvalidInput
		}
		line.Discount = *in.Discount
	}

	if err := uc.saleItems.Update(line); err != nil {
		return "", err
	}
	return line.ID, nil
}

// Delete elimina una línea de venta. El borrado es físico.
func (uc *SaleItemUseCase) Delete(caller access.Caller, id string) error {
	_, sale, err := uc.resolve(id)
	if err != nil {
		return err
	}
	acc, err := uc.access.HasAccessToOrg(caller, sale.OrgID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrUnauthorized
	}
	return uc.saleItems.Delete(id)
}

// resolve carga la línea y su venta madre, fallando con ErrNotFound si
// cualquiera de las dos no existe.
func (uc *SaleItemUseCase) resolve(id string) (*entity.SaleItem, *entity.Sale, error) {
	line, err := uc.saleItems.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if line == nil {
		return nil, nil, domain.ErrNotFound
	}
	sale, err := uc.sales.GetByID(line.SaleID)
	if err != nil {
		return nil, nil, err
	}
	if sale == nil {
		return nil, nil, domain.ErrNotFound
	}
	return line, sale, nil
}

func toSaleItemResponse(l *entity.SaleItem) *dto.SaleItemResponse {
	if l == nil {
		return nil
	}
	return &dto.SaleItemResponse{
		ID:       l.ID,
		SaleID:   l.SaleID,
		ItemID:   l.ItemID,
		Quantity: l.Quantity,
		Price:    l.Price,
		Discount: l.Discount,
	}
}
