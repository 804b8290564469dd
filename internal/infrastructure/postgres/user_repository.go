package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stockpilot/stockpilot-api/internal/domain"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
	"github.com/stockpilot/stockpilot-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
// Las membresías viven como JSONB en la fila del usuario.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, token_identifier, name, email, image, status, org_ids, created_at, deleted_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, token_identifier, name, email, image, status, org_ids, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	orgIDs := user.OrgIDs
	if orgIDs == nil {
		orgIDs = []entity.OrgMembership{}
	}
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.TokenIdentifier, user.Name, user.Email, user.Image,
		user.Status, orgIDs, user.CreatedAt, user.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByTokenIdentifier obtiene un usuario por su token identifier.
func (r *UserRepo) GetByTokenIdentifier(tokenIdentifier string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE token_identifier = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, tokenIdentifier))
}

// Update actualiza los datos de perfil y estado del usuario. Las membresías se
// actualizan aparte con UpdateMemberships.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, image = $4, status = $5, deleted_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Image, user.Status, user.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateMemberships reemplaza la lista completa de membresías del usuario.
func (r *UserRepo) UpdateMemberships(id string, orgIDs []entity.OrgMembership) error {
	if orgIDs == nil {
		orgIDs = []entity.OrgMembership{}
	}
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET org_ids = $2 WHERE id = $1`,
		id, orgIDs,
	)
	if err != nil {
		return fmt.Errorf("update user memberships: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.TokenIdentifier, &u.Name, &u.Email, &u.Image,
			&u.Status, &u.OrgIDs, &u.CreatedAt, &u.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.TokenIdentifier, &u.Name, &u.Email, &u.Image,
		&u.Status, &u.OrgIDs, &u.CreatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
