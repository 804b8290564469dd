// Package access resuelve la identidad del caller y decide si puede actuar
// sobre una organización y con qué rol. El Caller viaja explícito por cada
// operación; nunca hay estado global de identidad.
package access

import (
	"strings"

	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// Caller identidad resuelta del token entrante. TokenIdentifier vacío significa
// petición sin autenticar.
type Caller struct {
	TokenIdentifier string
}

// Authenticated indica si el caller presentó un token de identidad válido.
func (c Caller) Authenticated() bool {
	return c.TokenIdentifier != ""
}

// Access resultado de una verificación de acceso: el usuario interno y su rol
// en la organización consultada.
type Access struct {
	User *entity.User
	Role entity.Role
}

// Service verifica el acceso de callers a organizaciones.
type Service struct {
	users repository.UserRepository
}

// NewService construye el servicio con el puerto de usuarios.
func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// HasAccessToOrg devuelve (user, role) si el caller puede actuar sobre la
// organización, o nil en cualquier caso de no-autenticado o usuario desconocido.
// Si no hay membresía pero el token identifier contiene textualmente el id de
// la organización (tokens emitidos con scope de organización), concede el rol
// sintético "member".
func (s *Service) HasAccessToOrg(caller Caller, orgID string) (*Access, error) {
	if !caller.Authenticated() || orgID == "" {
		return nil, nil
	}

	user, err := s.users.GetByTokenIdentifier(caller.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if m := user.MembershipFor(orgID); m != nil {
		return &Access{User: user, Role: m.Role}, nil
	}

	if strings.Contains(user.TokenIdentifier, orgID) {
		return &Access{User: user, Role: entity.RoleMember}, nil
	}

	return nil, nil
}

// ResolveUser devuelve el usuario interno del caller. Retorna
// domain.ErrUnauthenticated sin token y domain.ErrUserNotFound si el token no
// corresponde a ningún usuario poblado por el puente de identidad.
func (s *Service) ResolveUser(caller Caller) (*entity.User, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.users.GetByTokenIdentifier(caller.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
