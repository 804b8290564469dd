package entity

import "time"

// Organization representa una organización (tenant). Se crea exactamente una vez
// por evento organization.created del proveedor de identidad.
// ClerkOrgID es el id externo ("org_…"): es el identificador con el que el resto
// de entidades referencian a la organización (OrgID).
type Organization struct {
	ID              string
	Name            string
	Description     string
	Logo            string
	Address         string
	Phone           string
	Email           string
	CreatedBy       string // id externo del usuario creador
	ClerkOrgID      string
	TokenIdentifier string // token identifier del creador en el momento del alta
	CreatedAt       time.Time
}
