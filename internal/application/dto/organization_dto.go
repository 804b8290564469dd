package dto

import "time"

// CreateOrganizationRequest alta interna de organización (evento organization.created).
type CreateOrganizationRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Logo            string `json:"logo,omitempty"`
	CreatedBy       string `json:"createdBy"` // id externo del usuario creador
	ClerkOrgID      string `json:"clerkOrgId"`
	TokenIdentifier string `json:"tokenIdentifier"`
}

// UpdateOrganizationRequest patch parcial de una organización (solo admin).
type UpdateOrganizationRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// OrganizationResponse proyección de una organización.
type OrganizationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	ClerkOrgID  string    `json:"clerkOrgId"`
	CreatedAt   time.Time `json:"createdAt"`
}
