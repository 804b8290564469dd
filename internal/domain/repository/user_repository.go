package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByTokenIdentifier(tokenIdentifier string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdateMemberships reemplaza la lista completa de membresías (semántica de
	// patch del documento original).
	UpdateMemberships(id string, orgIDs []entity.OrgMembership) error
	List() ([]*entity.User, error)
}
