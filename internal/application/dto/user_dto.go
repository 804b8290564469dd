package dto

import (
	"time"

	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
)

// UpsertUserRequest alta o actualización de un usuario desde el proveedor de
// identidad, con clave el token identifier.
type UpsertUserRequest struct {
	TokenIdentifier string `json:"tokenIdentifier"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Image           string `json:"image,omitempty"`
}

// UserProfileResponse proyección pública de un usuario.
type UserProfileResponse struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Email string `json:"email"`
}

// UserResponse proyección completa del usuario autenticado (getMe).
type UserResponse struct {
	ID              string                 `json:"id"`
	TokenIdentifier string                 `json:"tokenIdentifier"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Image           string                 `json:"image,omitempty"`
	Status          entity.UserStatus      `json:"status"`
	OrgIDs          []entity.OrgMembership `json:"orgIds"`
	CreatedAt       time.Time              `json:"createdAt"`
}
