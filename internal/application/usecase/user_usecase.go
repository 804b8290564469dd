package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

// UserUseCase operaciones sobre usuarios: las internas las invoca el puente de
// identidad (upserts desde webhooks), las de consulta la API.
type UserUseCase struct {
	users  repository.UserRepository
	access *access.Service
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, accessSvc *access.Service) *UserUseCase {
	return &UserUseCase{users: users, access: accessSvc}
}

// UpsertUser inserta o actualiza un usuario con clave el token identifier.
// Idempotente: los webhooks user.created y user.updated pueden llegar repetidos
// o desordenados.
func (uc *UserUseCase) UpsertUser(in dto.UpsertUserRequest) error {
	if in.TokenIdentifier == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByTokenIdentifier(in.TokenIdentifier)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Name = in.Name
		existing.Email = in.Email
		existing.Image = in.Image
		return uc.users.Update(existing)
	}
	return uc.users.Create(&entity.User{
		ID:              uuid.New().String(),
		TokenIdentifier: in.TokenIdentifier,
		Name:            in.Name,
		Email:           in.Email,
		Image:           in.Image,
		Status:          entity.UserActive,
		OrgIDs:          []entity.OrgMembership{},
		CreatedAt:       time.Now(),
	})
}

// HandleDeleteUser marca el usuario como eliminado (borrado lógico). No elimina
// en cascada los datos que referencian al usuario.
func (uc *UserUseCase) HandleDeleteUser(tokenIdentifier string) error {
	user, err := uc.users.GetByTokenIdentifier(tokenIdentifier)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	now := time.Now()
	user.Status = entity.UserDeleted
	user.DeletedAt = &now
	return uc.users.Update(user)
}

// AddOrgToUser añade la membresía (orgID, role) al usuario. Si ya existe una
// entrada para la organización actualiza el rol: un usuario tiene a lo sumo una
// membresía por organización.
func (uc *UserUseCase) AddOrgToUser(tokenIdentifier, orgID string, role entity.Role) error {
	user, err := uc.users.GetByTokenIdentifier(tokenIdentifier)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if m := user.MembershipFor(orgID); m != nil {
		m.Role = role
	} else {
		user.OrgIDs = append(user.OrgIDs, entity.OrgMembership{OrgID: orgID, Role: role})
	}
	return uc.users.UpdateMemberships(user.ID, user.OrgIDs)
}

// UpdateRoleInOrg cambia el rol de una membresía existente; falla si el usuario
// no pertenece a la organización.
func (uc *UserUseCase) UpdateRoleInOrg(tokenIdentifier, orgID string, role entity.Role) error {
	user, err := uc.users.GetByTokenIdentifier(tokenIdentifier)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	m := user.MembershipFor(orgID)
	if m == nil {
		return domain.ErrMembershipNotFound
	}
	m.Role = role
	return uc.users.UpdateMemberships(user.ID, user.OrgIDs)
}

// GetUserProfile devuelve la proyección pública de un usuario, o nil si no existe.
func (uc *UserUseCase) GetUserProfile(userID string) (*dto.UserProfileResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.UserProfileResponse{Name: user.Name, Image: user.Image, Email: user.Email}, nil
}

// GetMe devuelve el usuario interno del caller autenticado.
func (uc *UserUseCase) GetMe(caller access.Caller) (*dto.UserResponse, error) {
	user, err := uc.access.ResolveUser(caller)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		TokenIdentifier: u.TokenIdentifier,
		Name:            u.Name,
		Email:           u.Email,
		Image:           u.Image,
		Status:          u.Status,
		OrgIDs:          u.OrgIDs,
		CreatedAt:       u.CreatedAt,
	}
}
