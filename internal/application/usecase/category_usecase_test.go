package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type categoryEnv struct {
	uc    *usecase.CategoryUseCase
	cats  *fakeCategoryRepo
	items *fakeItemRepo
}

func newCategoryEnv(t *testing.T) *categoryEnv {
	t.Helper()
	users := &fakeUserRepo{}
	users.seedUser("u-ana", tokenAna, entity.OrgMembership{OrgID: orgAcme, Role: entity.RoleAdmin})

	cats := &fakeCategoryRepo{}
	items := &fakeItemRepo{}
	uc := usecase.NewCategoryUseCase(cats, items, access.NewService(users))
	return &categoryEnv{uc: uc, cats: cats, items: items}
}

// seedCategory añade una categoría con la madre indicada (vacía = raíz).
func (e *categoryEnv) seedCategory(id, parentID string) {
	e.cats.cats = append(e.cats.cats, &entity.Category{
		ID:               id,
		OrgID:            orgAcme,
		Name:             "Categoría " + id,
		ParentCategoryID: parentID,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create y Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_MadreDeOtraOrgSeRechaza(t *testing.T) {
	env := newCategoryEnv(t)
	env.cats.cats = append(env.cats.cats, &entity.Category{ID: "cat-ajena", OrgID: orgGlobex})

	_, err := env.uc.Create(callerWith(tokenAna), dto.CreateCategoryRequest{
		Name:             "Periféricos",
		OrgID:            orgAcme,
		ParentCategoryID: "cat-ajena",
		CreatedBy:        "u-ana",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_RechazaCicloDirecto(t *testing.T) {
	env := newCategoryEnv(t)
	env.seedCategory("cat-1", "")

	parent := "cat-1"
	_, err := env.uc.Update(callerWith(tokenAna), dto.UpdateCategoryRequest{
		ID:               "cat-1",
		ParentCategoryID: &parent,
	})
	assert.ErrorIs(t, err, domain.ErrCategoryCycle, "una categoría no puede colgar de sí misma")
}

func TestCategoryUpdate_RechazaCicloTransitivo(t *testing.T) {
	env := newCategoryEnv(t)
	// cat-1 ← cat-2 ← cat-3; colgar cat-1 de cat-3 cerraría el ciclo.
	env.seedCategory("cat-1", "")
	env.seedCategory("cat-2", "cat-1")
	env.seedCategory("cat-3", "cat-2")

	parent := "cat-3"
	_, err := env.uc.Update(callerWith(tokenAna), dto.UpdateCategoryRequest{
		ID:               "cat-1",
		ParentCategoryID: &parent,
	})
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)
}

func TestCategoryUpdate_ReasignacionValidaDeMadre(t *testing.T) {
	env := newCategoryEnv(t)
	env.seedCategory("cat-1", "")
	env.seedCategory("cat-2", "")

	parent := "cat-2"
	_, err := env.uc.Update(callerWith(tokenAna), dto.UpdateCategoryRequest{
		ID:               "cat-1",
		ParentCategoryID: &parent,
	})
	require.NoError(t, err)
	assert.Equal(t, "cat-2", env.cats.cats[0].ParentCategoryID)
}

func TestCategoryUpdate_NombreVacioSeRechaza(t *testing.T) {
	env := newCategoryEnv(t)
	env.seedCategory("cat-1", "")

	empty := ""
	_, err := env.uc.Update(callerWith(tokenAna), dto.UpdateCategoryRequest{ID: "cat-1", Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_ConArticulosFalla(t *testing.T) {
	env := newCategoryEnv(t)
	env.seedCategory("cat-1", "")
	env.items.items = append(env.items.items, &entity.Item{ID: "it-1", OrgID: orgAcme, CategoryID: "cat-1"})

	err := env.uc.Delete(callerWith(tokenAna), "cat-1")
	assert.ErrorIs(t, err, domain.ErrCategoryWithItems)
	assert.Len(t, env.cats.cats, 1, "la categoría no debe eliminarse")
}

func TestCategoryDelete_ConHijasFalla(t *testing.T) {
	env := newCategoryEnv(t)
	env.seedCategory("cat-1", "")
	env.seedCategory("cat-2", "cat-1")

	err := env.uc.Delete(callerWith(tokenAna), "cat-1")
	assert.ErrorIs(t, err, domain.ErrCategoryWithChildren)
}

func TestCategoryDelete_HojaSinArticulosSeElimina(t *testing.T) {
	env := newCategoryEnv(t)
	env.seedCategory("cat-1", "")

	err := env.uc.Delete(callerWith(tokenAna), "cat-1")
	require.NoError(t, err)
	assert.Empty(t, env.cats.cats)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetHierarchy
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryHierarchy_ConstruyeElBosque(t *testing.T) {
	env := newCategoryEnv(t)
	env.seedCategory("cat-1", "")
	env.seedCategory("cat-2", "cat-1")
	env.seedCategory("cat-3", "")

	roots, err := env.uc.GetHierarchy(callerWith(tokenAna), orgAcme)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "cat-1", roots[0].ID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "cat-2", roots[0].Children[0].ID)
	assert.Empty(t, roots[1].Children)
}

func TestCategoryHierarchy_MadreInexistenteSeTrataComoRaiz(t *testing.T) {
	env := newCategoryEnv(t)
	env.seedCategory("cat-huerfana", "cat-borrada")

	roots, err := env.uc.GetHierarchy(callerWith(tokenAna), orgAcme)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "cat-huerfana", roots[0].ID)
}

func TestCategoryHierarchy_SinAccesoDegradaAVacio(t *testing.T) {
	env := newCategoryEnv(t)

	roots, err := env.uc.GetHierarchy(callerWith(tokenBruno), orgAcme)
	require.NoError(t, err)
	assert.Empty(t, roots)
}
