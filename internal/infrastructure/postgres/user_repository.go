package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, first_name, razon_social, email, password_hash, role, status, owner, onboarding_completed, client_id`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.RazonSocial, &u.Email, &u.PasswordHash,
		&u.Role, &u.Status, &u.Owner, &u.OnboardingCompleted, &u.ClientID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario y completa el ID generado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (first_name, razon_social, email, password_hash, role, status, owner, onboarding_completed, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.FirstName, user.RazonSocial, user.Email, user.PasswordHash,
		user.Role, user.Status, user.Owner, user.OnboardingCompleted, user.ClientID,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

const userWithClientQuery = `
	SELECT u.id, u.first_name, u.razon_social, u.email, u.password_hash, u.role,
	       u.status, u.owner, u.onboarding_completed, u.client_id,
	       c.id, c.email, c.info, c.vip, c.vipmail, c.testing
	FROM users u
	LEFT JOIN clients c ON c.id = u.client_id`

func scanUserWithClient(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var cID, cInfo, cVip, cVipmail *string
	var cEmails []string
	var cTesting *bool
	err := row.Scan(
		&u.ID, &u.FirstName, &u.RazonSocial, &u.Email, &u.PasswordHash,
		&u.Role, &u.Status, &u.Owner, &u.OnboardingCompleted, &u.ClientID,
		&cID, &cEmails, &cInfo, &cVip, &cVipmail, &cTesting,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if cID != nil {
		u.ClientInfo = &entity.Client{
			ID:      *cID,
			Emails:  cEmails,
			Info:    deref(cInfo),
			Vip:     deref(cVip),
			Vipmail: deref(cVipmail),
			Testing: cTesting != nil && *cTesting,
		}
	}
	return &u, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetByIDWithClient obtiene un usuario con su cliente asociado (clientInfo).
func (r *UserRepo) GetByIDWithClient(id int64) (*entity.User, error) {
	query := userWithClientQuery + ` WHERE u.id = $1`
	u, err := scanUserWithClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get user with client: %w", err)
	}
	return u, nil
}

// List devuelve todos los usuarios con su clientInfo.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := userWithClientQuery + ` ORDER BY u.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUserWithClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update persiste los campos mutables del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET first_name = $2, razon_social = $3, role = $4, status = $5,
		    owner = $6, onboarding_completed = $7, client_id = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		user.ID, user.FirstName, user.RazonSocial, user.Role, user.Status,
		user.Owner, user.OnboardingCompleted, user.ClientID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePassword(id int64, passwordHash string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetStatus cambia el estado de habilitación.
func (r *UserRepo) SetStatus(id int64, status int) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
