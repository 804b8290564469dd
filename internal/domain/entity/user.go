package entity

import "time"

// Role rol de un usuario dentro de una organización.
type Role string

// Roles válidos en membresías. RoleMember es sintético: lo devuelve el control
// de acceso cuando el token identifier del caller contiene el id de la
// organización, nunca se persiste en una membresía.
const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	RoleMember  Role = "member"
)

// UserStatus estado del usuario (borrado lógico).
type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserDeleted UserStatus = "deleted"
)

// OrgMembership entrada (organización, rol) en la lista de membresías de un usuario.
type OrgMembership struct {
	OrgID string `json:"orgId"`
	Role  Role   `json:"role"`
}

// User representa un usuario interno poblado desde el proveedor de identidad.
// TokenIdentifier es la clave externa opaca "<issuer>|<external-user-id>".
// OrgIDs es una lista ordenada con a lo sumo una entrada por organización.
type User struct {
	ID              string
	TokenIdentifier string
	Name            string
	Email           string
	Image           string
	Status          UserStatus
	OrgIDs          []OrgMembership
	CreatedAt       time.Time
	DeletedAt       *time.Time
}

// MembershipFor devuelve la membresía del usuario en la organización, o nil.
func (u *User) MembershipFor(orgID string) *OrgMembership {
	for i := range u.OrgIDs {
		if u.OrgIDs[i].OrgID == orgID {
			return &u.OrgIDs[i]
		}
	}
	return nil
}
