package identity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/identity"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testHostname = "clerk.example.com"

// recorder registra las llamadas que el puente hace sobre usuarios y
// organizaciones.
type recorder struct {
	upserts     []dto.UpsertUserRequest
	deletes     []string
	memberships []membershipCall
	roleUpdates []membershipCall
	orgs        []dto.CreateOrganizationRequest
}

type membershipCall struct {
	token string
	orgID string
	role  entity.Role
}

func (r *recorder) UpsertUser(in dto.UpsertUserRequest) error {
	r.upserts = append(r.upserts, in)
	return nil
}

func (r *recorder) HandleDeleteUser(tokenIdentifier string) error {
	r.deletes = append(r.deletes, tokenIdentifier)
	return nil
}

func (r *recorder) AddOrgToUser(tokenIdentifier, orgID string, role entity.Role) error {
	r.memberships = append(r.memberships, membershipCall{tokenIdentifier, orgID, role})
	return nil
}

func (r *recorder) UpdateRoleInOrg(tokenIdentifier, orgID string, role entity.Role) error {
	r.roleUpdates = append(r.roleUpdates, membershipCall{tokenIdentifier, orgID, role})
	return nil
}

func (r *recorder) CreateOrganization(in dto.CreateOrganizationRequest) (string, error) {
	r.orgs = append(r.orgs, in)
	return "org-interna", nil
}

func newBridge(t *testing.T) (*identity.Bridge, *recorder) {
	t.Helper()
	rec := &recorder{}
	log := logger.New(logger.Config{Level: "error"})
	return identity.NewBridge(testHostname, rec, rec, log), rec
}

func event(t *testing.T, typ string, data any) identity.Event {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return identity.Event{Type: typ, Data: raw}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MapRole y TokenIdentifier
// ──────────────────────────────────────────────────────────────────────────────

func TestMapRole_TraduceRolesDelProveedor(t *testing.T) {
	assert.Equal(t, entity.RoleAdmin, identity.MapRole("org:admin"))
	assert.Equal(t, entity.RoleAdmin, identity.MapRole("admin"))
	assert.Equal(t, entity.RoleManager, identity.MapRole("org:manager"))
	assert.Equal(t, entity.RoleStaff, identity.MapRole("org:basic_member"), "los roles desconocidos caen en staff")
	assert.Equal(t, entity.RoleStaff, identity.MapRole(""))
}

func TestTokenIdentifier_ComponeIssuerYSujeto(t *testing.T) {
	bridge, _ := newBridge(t)
	assert.Equal(t, "https://clerk.example.com|user_123", bridge.TokenIdentifier("user_123"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests HandleEvent
// ──────────────────────────────────────────────────────────────────────────────

func TestHandleEvent_UserCreatedHaceUpsert(t *testing.T) {
	bridge, rec := newBridge(t)

	err := bridge.HandleEvent(event(t, "user.created", map[string]any{
		"id":         "user_123",
		"first_name": "Ana",
		"last_name":  "García",
		"image_url":  "https://img.example.com/ana.png",
		"email_addresses": []map[string]string{
			{"email_address": "ana@acme.test"},
			{"email_address": "ana.secundaria@acme.test"},
		},
	}))
	require.NoError(t, err)

	require.Len(t, rec.upserts, 1)
	up := rec.upserts[0]
	assert.Equal(t, "https://clerk.example.com|user_123", up.TokenIdentifier)
	assert.Equal(t, "Ana García", up.Name)
	assert.Equal(t, "ana@acme.test", up.Email, "se toma la primera dirección")
	assert.Equal(t, "https://img.example.com/ana.png", up.Image)
}

func TestHandleEvent_NombreParcialSinEspaciosSobrantes(t *testing.T) {
	bridge, rec := newBridge(t)

	err := bridge.HandleEvent(event(t, "user.updated", map[string]any{
		"id":         "user_123",
		"first_name": "Ana",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Ana", rec.upserts[0].Name)
}

func TestHandleEvent_UserDeleted(t *testing.T) {
	bridge, rec := newBridge(t)

	err := bridge.HandleEvent(event(t, "user.deleted", map[string]any{"id": "user_123"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://clerk.example.com|user_123"}, rec.deletes)
}

func TestHandleEvent_OrganizationCreated(t *testing.T) {
	bridge, rec := newBridge(t)

	err := bridge.HandleEvent(event(t, "organization.created", map[string]any{
		"id":         "org_acme",
		"name":       "Acme Corp",
		"image_url":  "https://img.example.com/acme.png",
		"created_by": "user_123",
	}))
	require.NoError(t, err)

	require.Len(t, rec.orgs, 1)
	org := rec.orgs[0]
	assert.Equal(t, "Acme Corp", org.Name)
	assert.Equal(t, "org_acme", org.ClerkOrgID)
	assert.Equal(t, "user_123", org.CreatedBy)
	assert.Equal(t, "https://clerk.example.com|user_123", org.TokenIdentifier)
}

func TestHandleEvent_MembershipCreatedYUpdated(t *testing.T) {
	bridge, rec := newBridge(t)

	data := map[string]any{
		"organization":     map[string]string{"id": "org_acme"},
		"public_user_data": map[string]string{"user_id": "user_123"},
		"role":             "org:admin",
	}

	require.NoError(t, bridge.HandleEvent(event(t, "organizationMembership.created", data)))
	require.Len(t, rec.memberships, 1)
	assert.Equal(t, entity.RoleAdmin, rec.memberships[0].role)
	assert.Equal(t, "org_acme", rec.memberships[0].orgID)

	data["role"] = "org:manager"
	require.NoError(t, bridge.HandleEvent(event(t, "organizationMembership.updated", data)))
	require.Len(t, rec.roleUpdates, 1)
	assert.Equal(t, entity.RoleManager, rec.roleUpdates[0].role)
}

func TestHandleEvent_TipoDesconocidoSeIgnoraSinError(t *testing.T) {
	bridge, rec := newBridge(t)

	err := bridge.HandleEvent(identity.Event{Type: "session.created", Data: json.RawMessage(`{}`)})
	require.NoError(t, err, "los tipos desconocidos no deben provocar reintentos del emisor")
	assert.Empty(t, rec.upserts)
	assert.Empty(t, rec.orgs)
}

func TestHandleEvent_PayloadIlegibleDevuelveError(t *testing.T) {
	bridge, _ := newBridge(t)

	err := bridge.HandleEvent(identity.Event{Type: "user.created", Data: json.RawMessage(`{`)})
	assert.Error(t, err)
}
