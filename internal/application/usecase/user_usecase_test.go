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

func newUserEnv(t *testing.T) (*usecase.UserUseCase, *fakeUserRepo) {
	t.Helper()
	users := &fakeUserRepo{}
	return usecase.NewUserUseCase(users, access.NewService(users)), users
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpsertUser
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpsert_CreaYLuegoActualiza(t *testing.T) {
	uc, users := newUserEnv(t)

	err := uc.UpsertUser(dto.UpsertUserRequest{TokenIdentifier: tokenAna, Name: "Ana", Email: "ana@acme.test"})
	require.NoError(t, err)
	require.Len(t, users.users, 1)
	firstID := users.users[0].ID
	assert.Equal(t, entity.UserActive, users.users[0].Status)

	// Un segundo upsert con el mismo token actualiza, no duplica.
	err = uc.UpsertUser(dto.UpsertUserRequest{TokenIdentifier: tokenAna, Name: "Ana María", Email: "ana@acme.test"})
	require.NoError(t, err)
	require.Len(t, users.users, 1, "el upsert debe ser idempotente por token identifier")
	assert.Equal(t, firstID, users.users[0].ID, "el id interno no debe cambiar")
	assert.Equal(t, "Ana María", users.users[0].Name)
}

func TestUserUpsert_TokenVacioSeRechaza(t *testing.T) {
	uc, _ := newUserEnv(t)

	err := uc.UpsertUser(dto.UpsertUserRequest{Name: "Sin token"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests HandleDeleteUser
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDelete_MarcaBorradoLogico(t *testing.T) {
	uc, users := newUserEnv(t)
	users.seedUser("u-ana", tokenAna)

	require.NoError(t, uc.HandleDeleteUser(tokenAna))
	assert.Equal(t, entity.UserDeleted, users.users[0].Status)
	assert.NotNil(t, users.users[0].DeletedAt)
}

func TestUserDelete_DesconocidoDevuelveUserNotFound(t *testing.T) {
	uc, _ := newUserEnv(t)

	err := uc.HandleDeleteUser(tokenAna)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests membresías
// ──────────────────────────────────────────────────────────────────────────────

func TestUserAddOrg_NuevaMembresiaYActualizacionDeRol(t *testing.T) {
	uc, users := newUserEnv(t)
	users.seedUser("u-ana", tokenAna)

	require.NoError(t, uc.AddOrgToUser(tokenAna, orgAcme, entity.RoleStaff))
	require.Len(t, users.users[0].OrgIDs, 1)
	assert.Equal(t, entity.RoleStaff, users.users[0].OrgIDs[0].Role)

	// Repetir con otro rol actualiza la entrada existente, no añade otra.
	require.NoError(t, uc.AddOrgToUser(tokenAna, orgAcme, entity.RoleAdmin))
	require.Len(t, users.users[0].OrgIDs, 1, "a lo sumo una membresía por organización")
	assert.Equal(t, entity.RoleAdmin, users.users[0].OrgIDs[0].Role)
}

func TestUserUpdateRole_SinMembresiaDevuelveMembershipNotFound(t *testing.T) {
	uc, users := newUserEnv(t)
	users.seedUser("u-ana", tokenAna)

	err := uc.UpdateRoleInOrg(tokenAna, orgAcme, entity.RoleManager)
	assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
}

func TestUserUpdateRole_CambiaElRol(t *testing.T) {
	uc, users := newUserEnv(t)
	users.seedUser("u-ana", tokenAna, entity.OrgMembership{OrgID: orgAcme, Role: entity.RoleStaff})

	require.NoError(t, uc.UpdateRoleInOrg(tokenAna, orgAcme, entity.RoleManager))
	assert.Equal(t, entity.RoleManager, users.users[0].OrgIDs[0].Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetMe y GetUserProfile
// ──────────────────────────────────────────────────────────────────────────────

func TestUserGetMe_SinTokenDevuelveUnauthenticated(t *testing.T) {
	uc, _ := newUserEnv(t)

	_, err := uc.GetMe(access.Caller{})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestUserGetMe_TokenDesconocidoDevuelveUserNotFound(t *testing.T) {
	uc, _ := newUserEnv(t)

	_, err := uc.GetMe(callerWith(tokenAna))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserGetProfile_InexistenteDevuelveNil(t *testing.T) {
	uc, _ := newUserEnv(t)

	got, err := uc.GetUserProfile("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserGetProfile_ProyeccionPublica(t *testing.T) {
	uc, users := newUserEnv(t)
	u := users.seedUser("u-ana", tokenAna)
	u.Email = "ana@acme.test"

	got, err := uc.GetUserProfile("u-ana")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ana@acme.test", got.Email)
}
