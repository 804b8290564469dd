package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
	"github.com/stockpilot/stockpilot-api/pkg/logger"
)

// OrganizationUseCase operaciones sobre organizaciones. El alta, la
// actualización y el borrado son internos: los dispara el puente de identidad
// o un admin de la organización.
type OrganizationUseCase struct {
	orgs     repository.OrganizationRepository
	users    repository.UserRepository
	settings *SettingsUseCase
	access   *access.Service
	log      *logger.Logger
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(
	orgs repository.OrganizationRepository,
	users repository.UserRepository,
	settings *SettingsUseCase,
	accessSvc *access.Service,
	log *logger.Logger,
) *OrganizationUseCase {
	return &OrganizationUseCase{orgs: orgs, users: users, settings: settings, access: accessSvc, log: log}
}

// CreateOrganization crea la organización, sus ajustes por defecto y, si el
// usuario creador ya existe, le añade la membresía admin. Se invoca exactamente
// una vez por evento organization.created.
func (uc *OrganizationUseCase) CreateOrganization(in dto.CreateOrganizationRequest) (string, error) {
	if in.Name == "" || in.ClerkOrgID == "" {
		return "", domain.ErrInvalidInput
	}
	org := &entity.Organization{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		Logo:            in.Logo,
		CreatedBy:       in.CreatedBy,
		ClerkOrgID:      in.ClerkOrgID,
		TokenIdentifier: in.TokenIdentifier,
		CreatedAt:       time.Now(),
	}
	if err := uc.orgs.Create(org); err != nil {
		return "", err
	}

	if _, err := uc.settings.CreateDefaults(in.ClerkOrgID, in.TokenIdentifier); err != nil {
		return "", err
	}

	creator, err := uc.users.GetByTokenIdentifier(in.TokenIdentifier)
	if err != nil {
		return "", err
	}
	if creator == nil {
		// El webhook user.created puede llegar después; la membresía la creará
		// organizationMembership.created.
		uc.log.Warn().Str("created_by", in.CreatedBy).Msg("usuario creador no encontrado al crear la organización")
		return org.ID, nil
	}
	if creator.MembershipFor(in.ClerkOrgID) == nil {
		creator.OrgIDs = append(creator.OrgIDs, entity.OrgMembership{OrgID: in.ClerkOrgID, Role: entity.RoleAdmin})
		if err := uc.users.UpdateMemberships(creator.ID, creator.OrgIDs); err != nil {
			return "", err
		}
	}
	return org.ID, nil
}

// GetOrganization devuelve la organización si el caller tiene acceso, o nil.
func (uc *OrganizationUseCase) GetOrganization(caller access.Caller, id string) (*dto.OrganizationResponse, error) {
	org, err := uc.orgs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	acc, err := uc.access.HasAccessToOrg(caller, org.ClerkOrgID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}
	return toOrganizationResponse(org), nil
}

// ListOrganizations devuelve las organizaciones de las membresías del caller.
func (uc *OrganizationUseCase) ListOrganizations(caller access.Caller) ([]*dto.OrganizationResponse, error) {
	me, err := uc.access.ResolveUser(caller)
	if err != nil {
		if err == domain.ErrUnauthenticated || err == domain.ErrUserNotFound {
			return []*dto.OrganizationResponse{}, nil
		}
		return nil, err
	}
	out := make([]*dto.OrganizationResponse, 0, len(me.OrgIDs))
	for _, m := range me.OrgIDs {
		org, err := uc.orgs.GetByClerkOrgID(m.OrgID)
		if err != nil {
			return nil, err
		}
		if org != nil {
			out = append(out, toOrganizationResponse(org))
		}
	}
	return out, nil
}

// UpdateOrganization aplica un patch parcial. Solo admins de la organización.
func (uc *OrganizationUseCase) UpdateOrganization(caller access.Caller, in dto.UpdateOrganizationRequest) error {
	org, err := uc.orgs.GetByID(in.ID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, org.ClerkOrgID)
	if err != nil {
		return err
	}
	if acc == nil || acc.Role != entity.RoleAdmin {
		return domain.ErrUnauthorized
	}

	if in.Name != nil {
		org.Name = *in.Name
	}
	if in.Description != nil {
		org.Description = *in.Description
	}
	if in.Logo != nil {
		org.Logo = *in.Logo
	}
	if in.Address != nil {
		org.Address = *in.Address
	}
	if in.Phone != nil {
		org.Phone = *in.Phone
	}
	if in.Email != nil {
		org.Email = *in.Email
	}
	return uc.orgs.Update(org)
}

// DeleteOrganization elimina la organización y retira su membresía de todos
// los usuarios. Solo admins.
func (uc *OrganizationUseCase) DeleteOrganization(caller access.Caller, id string) error {
	org, err := uc.orgs.GetByID(id)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNotFound
	}
	acc, err := uc.access.HasAccessToOrg(caller, org.ClerkOrgID)
	if err != nil {
		return err
	}
	if acc == nil || acc.Role != entity.RoleAdmin {
		return domain.ErrUnauthorized
	}

	if err := uc.orgs.Delete(id); err != nil {
		return err
	}

	users, err := uc.users.List()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.MembershipFor(org.ClerkOrgID) == nil {
			continue
		}
		kept := u.OrgIDs[:0]
		for _, m := range u.OrgIDs {
			if m.OrgID != org.ClerkOrgID {
				kept = append(kept, m)
			}
		}
		if err := uc.users.UpdateMemberships(u.ID, kept); err != nil {
			return err
		}
	}
	return nil
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	if o == nil {
		return nil
	}
	return &dto.OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Logo:        o.Logo,
		Address:     o.Address,
		Phone:       o.Phone,
		Email:       o.Email,
		ClerkOrgID:  o.ClerkOrgID,
		CreatedAt:   o.CreatedAt,
	}
}
