package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// ItemUseCase catálogo de artículos con borrado lógico y auditoría. Cada
// mutación escribe el artículo y su entrada de historia en la misma
// transacción; el usuario actuante se resuelve del caller, nunca del cliente.
type ItemUseCase struct {
	tx         ItemTxRunner
	items      repository.ItemRepository
	history    repository.ItemHistoryRepository
	categories repository.CategoryRepository
	access     *access.Service
}

// NewItemUseCase construye el caso de uso. items e history van atados al pool
// (lecturas); las mutaciones usan los repos atados a la transacción.
func NewItemUseCase(
	tx ItemTxRunner,
	items repository.ItemRepository,
	history repository.ItemHistoryRepository,
	categories repository.CategoryRepository,
	accessSvc *access.Service,
) *ItemUseCase {
	return &ItemUseCase{tx: tx, items: items, history: history, categories: categories, access: accessSvc}
}

// List devuelve los artículos de la organización, sin borrados lógicos, más
// recientes primero. Sin acceso degrada a lista vacía.
func (uc *ItemUseCase) List(caller access.Caller, orgID string) ([]*dto.ItemResponse, error) {
	acc, err := uc.access.HasAccessToOrg(caller, orgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return []*dto.ItemResponse{}, nil
	}
	items, err := uc.items.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Get devuelve un artículo, o nil si no existe, tiene borrado lógico o el
// caller no tiene acceso.
func (uc *ItemUseCase) Get(caller access.Caller, id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.DeletedAt != nil {
		return nil, nil
	}
	acc, err := uc.access.HasAccessToOrg(caller, item.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Create crea un artículo y registra la entrada de historia "create" con el
// payload completo. Status se guarda tal cual lo envía el caller.
func (uc *ItemUseCase) Create(ctx context.Context, caller access.Caller, in dto.CreateItemRequest) (string, error) {
	acc, err := uc.access.HasAccessToOrg(caller, in.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}
	if in.Name == "" || in.SKU == "" || !entity.ValidItemStatus(in.Status) {
		return "", domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.Quantity < 0 {
		return "", domain.ErrInvalidInput
	}
	if err := uc.validateCategory(in.CategoryID, in.OrgID); err != nil {
		return "", err
	}

	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		OrgID:       in.OrgID,
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		Barcode:     in.Barcode,
		Price:       in.Price,
		Cost:        in.Cost,
		Quantity:    in.Quantity,
		Status:      in.Status,
		CategoryID:  in.CategoryID,
		CreatedBy:   acc.User.ID,
		UpdatedBy:   acc.User.ID,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
	}
	changes, err := json.Marshal(in)
	if err != nil {
		return "", err
	}

	err = uc.tx.RunItems(ctx, func(items repository.ItemRepository, history repository.ItemHistoryRepository) error {
		if err := items.Create(item); err != nil {
			return err
		}
		return history.Append(&entity.ItemHistory{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Action:    entity.HistoryCreate,
			Changes:   changes,
			Timestamp: now,
			UserID:    acc.User.ID,
		})
	})
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// Update aplica un patch parcial y registra la entrada de historia "update"
// con los campos escritos.
func (uc *ItemUseCase) Update(ctx context.Context, caller access.Caller, in dto.UpdateItemRequest) (string, error) {
	item, err := uc.items.GetByID(in.ID)
	if err != nil {
		return "", err
	}
	if item == nil || item.DeletedAt != nil {
		return "", domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, item.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}
	if in.CategoryID != nil {
		if err := uc.validateCategory(*in.CategoryID, item.OrgID); err != nil {
			return "", err
		}
	}

	applyItemPatch(item, in)
	item.UpdatedBy = acc.User.ID

	changes, err := json.Marshal(in.Fields())
	if err != nil {
		return "", err
	}
	now := time.Now()

	err = uc.tx.RunItems(ctx, func(items repository.ItemRepository, history repository.ItemHistoryRepository) error {
		if err := items.Update(item); err != nil {
			return err
		}
		return history.Append(&entity.ItemHistory{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Action:    entity.HistoryUpdate,
			Changes:   changes,
			Timestamp: now,
			UserID:    acc.User.ID,
		})
	})
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// Remove marca el artículo con borrado lógico y registra la entrada "delete".
// El artículo deja de aparecer en listados pero conserva su historia.
func (uc *ItemUseCase) Remove(ctx context.Context, caller access.Caller, id string) (string, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return "", err
	}
	if item == nil || item.DeletedAt != nil {
		return "", domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, item.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}

	now := time.Now()
	item.DeletedAt = &now
	item.UpdatedBy = acc.User.ID

	changes, err := json.Marshal(map[string]any{"deletedAt": now.Format(time.RFC3339)})
	if err != nil {
		return "", err
	}

	err = uc.tx.RunItems(ctx, func(items repository.ItemRepository, history repository.ItemHistoryRepository) error {
		if err := items.Update(item); err != nil {
			return err
		}
		return history.Append(&entity.ItemHistory{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Action:    entity.HistoryDelete,
			Changes:   changes,
			Timestamp: now,
			UserID:    acc.User.ID,
		})
	})
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

// GetHistory devuelve la historia del artículo, más reciente primero. Incluye
// artículos con borrado lógico; sin acceso o artículo inexistente degrada a nil.
func (uc *ItemUseCase) GetHistory(caller access.Caller, itemID string) ([]*dto.ItemHistoryResponse, error) {
	item, err := uc.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	acc, err := uc.access.HasAccessToOrg(caller, item.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	history, err := uc.history.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemHistoryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, &dto.ItemHistoryResponse{
			ID:        h.ID,
			ItemID:    h.ItemID,
			Action:    h.Action,
			Changes:   h.Changes,
			Timestamp: h.Timestamp,
			UserID:    h.UserID,
		})
	}
	return out, nil
}

// BatchUpdate aplica un lote de patches. Los artículos inexistentes o con
// borrado lógico se omiten en silencio; un artículo de otra organización
// aborta el lote completo. Devuelve los ids efectivamente actualizados.
func (uc *ItemUseCase) BatchUpdate(ctx context.Context, caller access.Caller, in dto.BatchUpdateItemsRequest) ([]string, error) {
	acc, err := uc.access.HasAccessToOrg(caller, in.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrUnauthorized
	}

	updated := make([]string, 0, len(in.Items))
	err = uc.tx.RunItems(ctx, func(items repository.ItemRepository, history repository.ItemHistoryRepository) error {
		for _, entry := range in.Items {
			item, err := items.GetByID(entry.ID)
			if err != nil {
				return err
			}
			if item == nil || item.DeletedAt != nil {
				continue
			}
			if item.OrgID != in.OrgID {
				return domain.ErrUnauthorized
			}

			applyItemPatch(item, entry.Updates)
			item.UpdatedBy = acc.User.ID
			if err := items.Update(item); err != nil {
				return err
			}

			changes, err := json.Marshal(entry.Updates.Fields())
			if err != nil {
				return err
			}
			if err := history.Append(&entity.ItemHistory{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				Action:    entity.HistoryUpdate,
				Changes:   changes,
				Timestamp: time.Now(),
				UserID:    acc.User.ID,
			}); err != nil {
				return err
			}
			updated = append(updated, item.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *ItemUseCase) validateCategory(categoryID, orgID string) error {
	if categoryID == "" {
		return domain.ErrInvalidInput
	}
	cat, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return err
	}
	if cat == nil || cat.OrgID != orgID {
		return domain.ErrInvalidInput
	}
	return nil
}

func applyItemPatch(item *entity.Item, in dto.UpdateItemRequest) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.SKU != nil {
		item.SKU = *in.SKU
	}
	if in.Barcode != nil {
		item.Barcode = *in.Barcode
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Cost != nil {
		item.Cost = *in.Cost
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		OrgID:       it.OrgID,
		Name:        it.Name,
		Description: it.Description,
		SKU:         it.SKU,
		Barcode:     it.Barcode,
		Price:       it.Price,
		Cost:        it.Cost,
		Quantity:    it.Quantity,
		Status:      it.Status,
		CategoryID:  it.CategoryID,
		CreatedBy:   it.CreatedBy,
		UpdatedBy:   it.UpdatedBy,
		ImageURL:    it.ImageURL,
		CreatedAt:   it.CreatedAt,
	}
}
