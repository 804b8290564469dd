package repository

import "github.com/stockpilot/stockpilot-api/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para Settings (DIP).
type SettingsRepository interface {
	Create(settings *entity.Settings) error
	GetByID(id string) (*entity.Settings, error)
	GetByOrg(orgID string) (*entity.Settings, error)
	Update(settings *entity.Settings) error
}
