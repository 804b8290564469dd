// Package identity traduce eventos del proveedor de identidad (Clerk) a
// operaciones sobre usuarios y organizaciones locales.
package identity

import (
	"encoding/json"
	"strings"

	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/pkg/logger"
)

// UserWriter operaciones sobre usuarios que el puente necesita.
type UserWriter interface {
	UpsertUser(in dto.UpsertUserRequest) error
	HandleDeleteUser(tokenIdentifier string) error
	AddOrgToUser(tokenIdentifier, orgID string, role entity.Role) error
	UpdateRoleInOrg(tokenIdentifier, orgID string, role entity.Role) error
}

// OrgCreator alta de organizaciones que el puente necesita.
type OrgCreator interface {
	CreateOrganization(in dto.CreateOrganizationRequest) (string, error)
}

// Bridge procesa eventos de webhook ya verificados. Los tipos de evento
// desconocidos se ignoran sin error para que el emisor no reintente.
type Bridge struct {
	hostname string
	users    UserWriter
	orgs     OrgCreator
	log      *logger.Logger
}

func NewBridge(hostname string, users UserWriter, orgs OrgCreator, log *logger.Logger) *Bridge {
	return &Bridge{hostname: hostname, users: users, orgs: orgs, log: log}
}

// Event sobre genérico de un webhook de Clerk.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type userData struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ImageURL       string `json:"image_url"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

type organizationData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	CreatedBy string `json:"created_by"`
}

type membershipData struct {
	Organization struct {
		ID string `json:"id"`
	} `json:"organization"`
	PublicUserData struct {
		UserID string `json:"user_id"`
	} `json:"public_user_data"`
	Role string `json:"role"`
}

// TokenIdentifier compone el identificador estable de un usuario externo, el
// mismo que emite el issuer en los JWT de sesión.
func (b *Bridge) TokenIdentifier(externalID string) string {
	return "https://" + b.hostname + "|" + externalID
}

// MapRole traduce el rol del proveedor al rol local. Los roles desconocidos
// caen en staff.
func MapRole(role string) entity.Role {
	switch strings.TrimPrefix(role, "org:") {
	case "admin":
		return entity.RoleAdmin
	case "manager":
		return entity.RoleManager
	}
	return entity.RoleStaff
}

// HandleEvent despacha un evento según su tipo.
func (b *Bridge) HandleEvent(evt Event) error {
	switch evt.Type {
	case "user.created", "user.updated":
		return b.handleUserUpsert(evt.Data)
	case "user.deleted":
		return b.handleUserDeleted(evt.Data)
	case "organization.created":
		return b.handleOrganizationCreated(evt.Data)
	case "organizationMembership.created":
		return b.handleMembership(evt.Data, false)
	case "organizationMembership.updated":
		return b.handleMembership(evt.Data, true)
	}
	b.log.Debug().Str("type", evt.Type).Msg("evento de webhook ignorado")
	return nil
}

func (b *Bridge) handleUserUpsert(data json.RawMessage) error {
	var u userData
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}
	email := ""
	if len(u.EmailAddresses) > 0 {
		email = u.EmailAddresses[0].EmailAddress
	}
	return b.users.UpsertUser(dto.UpsertUserRequest{
		TokenIdentifier: b.TokenIdentifier(u.ID),
		Name:            strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email:           email,
		Image:           u.ImageURL,
	})
}

func (b *Bridge) handleUserDeleted(data json.RawMessage) error {
	var u userData
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}
	return b.users.HandleDeleteUser(b.TokenIdentifier(u.ID))
}

func (b *Bridge) handleOrganizationCreated(data json.RawMessage) error {
	var o organizationData
	if err := json.Unmarshal(data, &o); err != nil {
		return err
	}
	_, err := b.orgs.CreateOrganization(dto.CreateOrganizationRequest{
		Name:            o.Name,
		Logo:            o.ImageURL,
		CreatedBy:       o.CreatedBy,
		ClerkOrgID:      o.ID,
		TokenIdentifier: b.TokenIdentifier(o.CreatedBy),
	})
	return err
}

func (b *Bridge) handleMembership(data json.RawMessage, update bool) error {
	var m membershipData
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	token := b.TokenIdentifier(m.PublicUserData.UserID)
	role := MapRole(m.Role)
	if update {
		return b.users.UpdateRoleInOrg(token, m.Organization.ID, role)
	}
	return b.users.AddOrgToUser(token, m.Organization.ID, role)
}
