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

var _ repository.WebuserRepository = (*WebuserRepo)(nil)

// WebuserRepo implementación del puerto WebuserRepository sobre PostgreSQL.
type WebuserRepo struct {
	q Querier
}

// NewWebuserRepository construye el adaptador para credenciales web. Pasar pool o tx (Querier).
func NewWebuserRepository(q Querier) *WebuserRepo {
	return &WebuserRepo{q: q}
}

const webuserColumns = `id, password_hash, email, default_email, role, active, user_id`

func scanWebuser(row pgx.Row) (*entity.Webuser, error) {
	var w entity.Webuser
	err := row.Scan(&w.ID, &w.PasswordHash, &w.Email, &w.DefaultEmail, &w.Role, &w.Active, &w.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// Create persiste una credencial nueva y completa el ID generado.
func (r *WebuserRepo) Create(webuser *entity.Webuser) error {
	query := `
		INSERT INTO webusers (password_hash, email, default_email, role, active, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		webuser.PasswordHash, webuser.Email, webuser.DefaultEmail,
		webuser.Role, webuser.Active, webuser.UserID,
	).Scan(&webuser.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert webuser: %w", err)
	}
	return nil
}

// GetByEmail obtiene una credencial por email.
func (r *WebuserRepo) GetByEmail(email string) (*entity.Webuser, error) {
	query := `SELECT ` + webuserColumns + ` FROM webusers WHERE email = $1`
	w, err := scanWebuser(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		return nil, fmt.Errorf("get webuser: %w", err)
	}
	return w, nil
}

// List devuelve todas las credenciales.
func (r *WebuserRepo) List() ([]*entity.Webuser, error) {
	return r.list(`SELECT ` + webuserColumns + ` FROM webusers ORDER BY id`)
}

// ListByUser devuelve las credenciales de un usuario del portal.
func (r *WebuserRepo) ListByUser(userID int64) ([]*entity.Webuser, error) {
	return r.list(`SELECT `+webuserColumns+` FROM webusers WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *WebuserRepo) list(query string, args ...any) ([]*entity.Webuser, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list webusers: %w", err)
	}
	defer rows.Close()

	var webusers []*entity.Webuser
	for rows.Next() {
		w, err := scanWebuser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan webuser: %w", err)
		}
		webusers = append(webusers, w)
	}
	return webusers, rows.Err()
}

// SetRole asigna rol y activa la credencial en un solo paso.
func (r *WebuserRepo) SetRole(email, role string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE webusers SET role = $2, active = true WHERE email = $1`, email, role)
	if err != nil {
		return fmt.Errorf("set webuser role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *WebuserRepo) UpdatePassword(email, passwordHash string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE webusers SET password_hash = $2 WHERE email = $1`, email, passwordHash)
	if err != nil {
		return fmt.Errorf("update webuser password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

// OperatorRepo implementación del puerto OperatorRepository sobre PostgreSQL.
type OperatorRepo struct {
	q Querier
}

// NewOperatorRepository construye el adaptador para operadores. Pasar pool o tx (Querier).
func NewOperatorRepository(q Querier) *OperatorRepo {
	return &OperatorRepo{q: q}
}

// Create persiste un operador y completa el ID generado.
func (r *OperatorRepo) Create(operator *entity.Operator) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO operators (email, password_hash) VALUES ($1, $2) RETURNING id`,
		operator.Email, operator.PasswordHash,
	).Scan(&operator.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert operator: %w", err)
	}
	return nil
}

// GetByEmail obtiene un operador por email.
func (r *OperatorRepo) GetByEmail(email string) (*entity.Operator, error) {
	var o entity.Operator
	err := r.q.QueryRow(context.Background(),
		`SELECT id, email, password_hash FROM operators WHERE email = $1`, email,
	).Scan(&o.ID, &o.Email, &o.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operator: %w", err)
	}
	return &o, nil
}

// List devuelve todos los operadores.
func (r *OperatorRepo) List() ([]*entity.Operator, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, email, password_hash FROM operators ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	defer rows.Close()

	var operators []*entity.Operator
	for rows.Next() {
		var o entity.Operator
		if err := rows.Scan(&o.ID, &o.Email, &o.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan operator: %w", err)
		}
		operators = append(operators, &o)
	}
	return operators, rows.Err()
}

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador para el personal de soporte. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffWithUserQuery = `
	SELECT s.id, s.name, s.phone, s.email, s.zone, s.start_shift, s.end_shift, s.user_id,
	       u.id, u.first_name, u.razon_social, u.email, u.role, u.status, u.owner, u.onboarding_completed, u.client_id
	FROM staffs s
	LEFT JOIN users u ON u.id = s.user_id`

func scanStaffWithUser(row pgx.Row) (*entity.Staff, error) {
	var s entity.Staff
	var uID *int64
	var uFirstName, uRazonSocial, uEmail, uRole, uClientID *string
	var uStatus *int
	var uOwner, uOnboarding *bool
	err := row.Scan(
		&s.ID, &s.Name, &s.Phone, &s.Email, &s.Zone, &s.StartShift, &s.EndShift, &s.UserID,
		&uID, &uFirstName, &uRazonSocial, &uEmail, &uRole, &uStatus, &uOwner, &uOnboarding, &uClientID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if uID != nil {
		status := 0
		if uStatus != nil {
			status = *uStatus
		}
		s.User = &entity.User{
			ID:                  *uID,
			FirstName:           deref(uFirstName),
			RazonSocial:         deref(uRazonSocial),
			Email:               deref(uEmail),
			Role:                deref(uRole),
			Status:              status,
			Owner:               uOwner != nil && *uOwner,
			OnboardingCompleted: uOnboarding != nil && *uOnboarding,
			ClientID:            uClientID,
		}
	}
	return &s, nil
}

// List devuelve todo el staff con la información del usuario asociado.
func (r *StaffRepo) List() ([]*entity.Staff, error) {
	return r.list(staffWithUserQuery + ` ORDER BY s.id`)
}

// ListByUser devuelve el staff asociado a un usuario del portal.
func (r *StaffRepo) ListByUser(userID int64) ([]*entity.Staff, error) {
	return r.list(staffWithUserQuery+` WHERE s.user_id = $1 ORDER BY s.id`, userID)
}

func (r *StaffRepo) list(query string, args ...any) ([]*entity.Staff, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var staffs []*entity.Staff
	for rows.Next() {
		s, err := scanStaffWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		staffs = append(staffs, s)
	}
	return staffs, rows.Err()
}

var _ repository.RecommendationRepository = (*RecommendationRepo)(nil)

// RecommendationRepo implementación del puerto RecommendationRepository.
type RecommendationRepo struct {
	q Querier
}

// NewRecommendationRepository construye el adaptador para recomendaciones. Pasar pool o tx (Querier).
func NewRecommendationRepository(q Querier) *RecommendationRepo {
	return &RecommendationRepo{q: q}
}

// Create persiste una recomendación y completa el ID generado.
func (r *RecommendationRepo) Create(rec *entity.Recommendation) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO recommendations (title, text, image, flags) VALUES ($1, $2, $3, $4) RETURNING id`,
		rec.Title, rec.Text, rec.Image, rec.Flags,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert recommendation: %w", err)
	}
	return nil
}

// GetByID obtiene una recomendación.
func (r *RecommendationRepo) GetByID(id int64) (*entity.Recommendation, error) {
	var rec entity.Recommendation
	err := r.q.QueryRow(context.Background(),
		`SELECT id, title, text, image, flags FROM recommendations WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.Title, &rec.Text, &rec.Image, &rec.Flags)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recommendation: %w", err)
	}
	return &rec, nil
}

// List devuelve todas las recomendaciones.
func (r *RecommendationRepo) List() ([]*entity.Recommendation, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, title, text, image, flags FROM recommendations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*entity.Recommendation
	for rows.Next() {
		var rec entity.Recommendation
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Text, &rec.Image, &rec.Flags); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

// Update persiste los campos mutables de la recomendación.
func (r *RecommendationRepo) Update(rec *entity.Recommendation) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE recommendations SET title = $2, text = $3, image = $4, flags = $5 WHERE id = $1`,
		rec.ID, rec.Title, rec.Text, rec.Image, rec.Flags)
	if err != nil {
		return fmt.Errorf("update recommendation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una recomendación.
func (r *RecommendationRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM recommendations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
