package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
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

type saleItemEnv struct {
	uc    *usecase.SaleItemUseCase
	lines *fakeSaleItemRepo
	sales *fakeSaleRepo
	items *fakeItemRepo
}

func newSaleItemEnv(t *testing.T) *saleItemEnv {
	t.Helper()
	users := &fakeUserRepo{}
	users.seedUser("u-ana", tokenAna, entity.OrgMembership{OrgID: orgAcme, Role: entity.RoleStaff})

	lines := &fakeSaleItemRepo{}
	sales := &fakeSaleRepo{}
	items := &fakeItemRepo{}
	uc := usecase.NewSaleItemUseCase(lines, sales, items, access.NewService(users))
	return &saleItemEnv{uc: uc, lines: lines, sales: sales, items: items}
}

func (e *saleItemEnv) seedSale(id, orgID string) {
	e.sales.sales = append(e.sales.sales, &entity.Sale{
		ID: id, OrgID: orgID, Date: "2025-11-02T10:00:00Z", Status: entity.SaleCompleted,
	})
}

func (e *saleItemEnv) seedLine(id, saleID, itemID string) {
	e.lines.lines = append(e.lines.lines, &entity.SaleItem{
		ID: id, SaleID: saleID, ItemID: itemID, Quantity: 1, Price: decimal.NewFromInt(100),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleItemCreate_VentaInexistenteDevuelveNotFound(t *testing.T) {
	env := newSaleItemEnv(t)

	_, err := env.uc.Create(callerWith(tokenAna), dto.CreateSaleItemRequest{
		SaleID: "no-existe", ItemID: "it-1", Quantity: 1, Price: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleItemCreate_AccesoSeDecidePorLaVentaMadre(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedSale("s-ajena", orgGlobex)

	_, err := env.uc.Create(callerWith(tokenAna), dto.CreateSaleItemRequest{
		SaleID: "s-ajena", ItemID: "it-1", Quantity: 1, Price: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSaleItemCreate_CantidadNoPositivaSeRechaza(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedSale("s-1", orgAcme)

	_, err := env.uc.Create(callerWith(tokenAna), dto.CreateSaleItemRequest{
		SaleID: "s-1", ItemID: "it-1", Quantity: 0, Price: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaleItemCreate_LineaValidaSePersiste(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedSale("s-1", orgAcme)

	id, err := env.uc.Create(callerWith(tokenAna), dto.CreateSaleItemRequest{
		SaleID: "s-1", ItemID: "it-1", Quantity: 3, Price: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, env.lines.lines, 1)
	assert.Equal(t, 3, env.lines.lines[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Get
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleItemGet_DevuelveLaLinea(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedSale("s-1", orgAcme)
	env.seedLine("li-1", "s-1", "it-1")

	out, err := env.uc.Get(callerWith(tokenAna), "li-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "li-1", out.ID)
	assert.Equal(t, "s-1", out.SaleID)
}

func TestSaleItemGet_InexistenteDegradaANil(t *testing.T) {
	env := newSaleItemEnv(t)

	out, err := env.uc.Get(callerWith(tokenAna), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSaleItemGet_SinVentaMadreDegradaANil(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedLine("li-1", "s-borrada", "it-1")

	out, err := env.uc.Get(callerWith(tokenAna), "li-1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestSaleItemGet_SinAccesoALaVentaDegradaANil(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedSale("s-ajena", orgGlobex)
	env.seedLine("li-1", "s-ajena", "it-1")

	out, err := env.uc.Get(callerWith(tokenAna), "li-1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List y ListWithDetails
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleItemList_VentaInexistenteDegradaAVacio(t *testing.T) {
	env := newSaleItemEnv(t)

	list, err := env.uc.List(callerWith(tokenAna), "no-existe")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaleItemListWithDetails_ArticuloBorradoDejaItemEnNil(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedSale("s-1", orgAcme)
	env.seedLine("l-1", "s-1", "it-vivo")
	env.seedLine("l-2", "s-1", "it-borrado")
	env.items.items = append(env.items.items, &entity.Item{ID: "it-vivo", OrgID: orgAcme, Name: "Teclado", SKU: "KB-001"})

	list, err := env.uc.ListWithDetails(callerWith(tokenAna), "s-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].Item)
	assert.Equal(t, "Teclado", list[0].Item.Name)
	assert.Equal(t, "KB-001", list[0].Item.SKU)
	assert.Nil(t, list[1].Item, "la línea conserva el id pero sin detalle del artículo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleItemUpdate_AplicaPatchParcial(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedSale("s-1", orgAcme)
	env.seedLine("l-1", "s-1", "it-1")

	qty := 5
	_, err := env.uc.Update(callerWith(tokenAna), dto.UpdateSaleItemRequest{ID: "l-1", Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 5, env.lines.lines[0].Quantity)
	assert.True(t, env.lines.lines[0].Price.Equal(decimal.NewFromInt(100)), "el precio no debe tocarse")
}

func TestSaleItemUpdate_VentaMadreAusenteDevuelveNotFound(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedLine("l-1", "s-borrada", "it-1")

	qty := 5
	_, err := env.uc.Update(callerWith(tokenAna), dto.UpdateSaleItemRequest{ID: "l-1", Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleItemDelete_EliminaLaLinea(t *testing.T) {
	env := newSaleItemEnv(t)
	env.seedSale("s-1", orgAcme)
	env.seedLine("l-1", "s-1", "it-1")

	require.NoError(t, env.uc.Delete(callerWith(tokenAna), "l-1"))
	assert.Empty(t, env.lines.lines)
}
