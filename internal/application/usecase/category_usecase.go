package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// CategoryUseCase categorías jerárquicas del catálogo. El borrado es físico
// pero queda bloqueado mientras la categoría tenga artículos o hijas.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	items      repository.ItemRepository
	access     *access.Service
}

func NewCategoryUseCase(
	categories repository.CategoryRepository,
	items repository.ItemRepository,
	accessSvc *access.Service,
) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, items: items, access: accessSvc}
}

// List devuelve las categorías de la organización; sin acceso degrada a lista vacía.
func (uc *CategoryUseCase) List(caller access.Caller, orgID string) ([]*dto.CategoryResponse, error) {
	acc, err := uc.access.HasAccessToOrg(caller, orgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return []*dto.CategoryResponse{}, nil
	}
	cats, err := uc.categories.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Get devuelve una categoría, o nil si no existe o el caller no tiene acceso.
func (uc *CategoryUseCase) Get(caller access.Caller, id string) (*dto.CategoryResponse, error) {
	cat, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	acc, err := uc.access.HasAccessToOrg(caller, cat.OrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	return toCategoryResponse(cat), nil
}

// Create crea una categoría. La madre, si se indica, debe existir y pertenecer
// a la misma organización.
func (uc *CategoryUseCase) Create(caller access.Caller, in dto.CreateCategoryRequest) (string, error) {
	acc, err := uc.access.HasAccessToOrg(caller, in.OrgID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrUnauthorized
	}
	if in.Name == "" || in.CreatedBy == "" {
		return "", domain.ErrInvalidInput
	}
	if in.ParentCategoryID != "" {
		if err := uc.validateParent(in.ParentCategoryID, in.OrgID); err != nil {
			return "", err
		}
	}

	cat := &entity.Category{
		ID:               uuid.New().String(),
		OrgID:            in.OrgID,
		Name:             in.Name,
		Description:      in.Description,
		ParentCategoryID: in.ParentCategoryID,
		CreatedBy:        in.CreatedBy,
		CreatedAt:        time.Now(),
	}
	if err := uc.categories.Create(cat); err != nil {
		return "", err
	}
	return cat.ID, nil
}

// Update aplica un patch parcial. Reasignar la madre rechaza ciclos: una
// categoría no puede colgar de sí misma ni de una descendiente suya.
func (uc *CategoryUseCase) Update(caller access.Caller, in dto.UpdateCategoryRequest) (string, error) {
	cat, err := uc.categories.GetByID(in.ID)
	if err != nil {
		return "", err
	}
	if cat == nil {
		return "", domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, cat.OrgID)
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
		cat.Name = *in.Name
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	if in.ParentCategoryID != nil {
		parent := *in.ParentCategoryID
		if parent != "" {
			if err := uc.validateParent(parent, cat.OrgID); err != nil {
				return "", err
			}
			if err := uc.checkNoCycle(cat.ID, parent); err != nil {
				return "", err
			}
		}
		cat.ParentCategoryID = parent
	}

	if err := uc.categories.Update(cat); err != nil {
		return "", err
	}
	return cat.ID, nil
}

// Delete elimina la categoría. Falla si tiene artículos asignados o categorías
// hijas; no hay reasignación automática.
func (uc *CategoryUseCase) Delete(caller access.Caller, id string) error {
	cat, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, cat.OrgID)
	if err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrUnauthorized
	}

	hasItems, err := uc.items.ExistsByCategory(id)
	if err != nil {
		return err
	}
	if hasItems {
		return domain.ErrCategoryWithItems
	}
	hasChildren, err := uc.categories.HasChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return domain.ErrCategoryWithChildren
	}
	return uc.categories.Delete(id)
}

// GetHierarchy devuelve el bosque de categorías de la organización. Las
// categorías cuya madre no existe se tratan como raíces.
func (uc *CategoryUseCase) GetHierarchy(caller access.Caller, orgID string) ([]*dto.CategoryNode, error) {
	acc, err := uc.access.HasAccessToOrg(caller, orgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return []*dto.CategoryNode{}, nil
	}
	cats, err := uc.categories.ListByOrg(orgID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*dto.CategoryNode, len(cats))
	for _, c := range cats {
		nodes[c.ID] = &dto.CategoryNode{
			CategoryResponse: *toCategoryResponse(c),
			Children:         []*dto.CategoryNode{},
		}
	}
	roots := []*dto.CategoryNode{}
	for _, c := range cats {
		node := nodes[c.ID]
		if parent, ok := nodes[c.ParentCategoryID]; ok && c.ParentCategoryID != c.ID {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}
	return roots, nil
}

func (uc *CategoryUseCase) validateParent(parentID, orgID string) error {
	parent, err := uc.categories.GetByID(parentID)
	if err != nil {
		return err
	}
	if parent == nil || parent.OrgID != orgID {
		return domain.ErrInvalidInput
	}
	return nil
}

// checkNoCycle sube por la cadena de madres desde newParent; si alcanza a la
// propia categoría la reasignación crearía un ciclo.
func (uc *CategoryUseCase) checkNoCycle(id, newParent string) error {
	if newParent == id {
		return domain.ErrCategoryCycle
	}
	seen := map[string]bool{id: true}
	current := newParent
	for current != "" && !seen[current] {
		seen[current] = true
		cat, err := uc.categories.GetByID(current)
		if err != nil {
			return err
		}
		if cat == nil {
			return nil
		}
		current = cat.ParentCategoryID
		if current == id {
			return domain.ErrCategoryCycle
		}
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:               c.ID,
		OrgID:            c.OrgID,
		Name:             c.Name,
		Description:      c.Description,
		ParentCategoryID: c.ParentCategoryID,
		CreatedBy:        c.CreatedBy,
		CreatedAt:        c.CreatedAt,
	}
}
