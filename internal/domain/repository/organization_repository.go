package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	GetByClerkOrgID(clerkOrgID string) (*entity.Organization, error)
	Update(org *entity.Organization) error
	Delete(id string) error
}
