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

var _ repository.BotuserRepository = (*BotuserRepo)(nil)

// BotuserRepo implementación del puerto BotuserRepository sobre PostgreSQL.
// Las asociaciones viven en client_botusers; AddClients es idempotente vía
// ON CONFLICT DO NOTHING y ReplaceClients borra e inserta el conjunto entero.
type BotuserRepo struct {
	q Querier
}

// NewBotuserRepository construye el adaptador de persistencia para botusers. Pasar pool o tx (Querier).
func NewBotuserRepository(q Querier) *BotuserRepo {
	return &BotuserRepo{q: q}
}

const botuserColumns = `id, name, phone, email, create_user, can_sos, admin_pdf, manager, area, created_by`

func scanBotuser(row pgx.Row) (*entity.Botuser, error) {
	var b entity.Botuser
	err := row.Scan(
		&b.ID, &b.Name, &b.Phone, &b.Email, &b.CreateUser,
		&b.CanSOS, &b.AdminPdf, &b.Manager, &b.Area, &b.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// Create persiste un nuevo botuser y completa el ID generado.
func (r *BotuserRepo) Create(botuser *entity.Botuser) error {
	query := `
		INSERT INTO botusers (name, phone, email, create_user, can_sos, admin_pdf, manager, area, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		botuser.Name, botuser.Phone, botuser.Email, botuser.CreateUser,
		botuser.CanSOS, botuser.AdminPdf, botuser.Manager, botuser.Area, botuser.CreatedBy,
	).Scan(&botuser.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert botuser: %w", err)
	}
	return nil
}

// GetByID obtiene un botuser con sus clientes asociados.
func (r *BotuserRepo) GetByID(id int64) (*entity.Botuser, error) {
	query := `SELECT ` + botuserColumns + ` FROM botusers WHERE id = $1`
	b, err := scanBotuser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get botuser: %w", err)
	}
	if b == nil {
		return nil, nil
	}
	if err := r.loadClients(b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByPhone obtiene un botuser por teléfono, con sus clientes asociados.
func (r *BotuserRepo) GetByPhone(phone string) (*entity.Botuser, error) {
	query := `SELECT ` + botuserColumns + ` FROM botusers WHERE phone = $1`
	b, err := scanBotuser(r.q.QueryRow(context.Background(), query, phone))
	if err != nil {
		return nil, fmt.Errorf("get botuser by phone: %w", err)
	}
	if b == nil {
		return nil, nil
	}
	if err := r.loadClients(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BotuserRepo) loadClients(b *entity.Botuser) error {
	query := `
		SELECT c.id, c.email, c.info, c.vip, c.vipmail, c.testing
		FROM clients c
		JOIN client_botusers cb ON cb.client_id = c.id
		WHERE cb.botuser_id = $1
		ORDER BY c.id`
	rows, err := r.q.Query(context.Background(), query, b.ID)
	if err != nil {
		return fmt.Errorf("load botuser clients: %w", err)
	}
	defer rows.Close()

	b.Clients = []entity.Client{}
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Emails, &c.Info, &c.Vip, &c.Vipmail, &c.Testing); err != nil {
			return fmt.Errorf("scan botuser client: %w", err)
		}
		b.Clients = append(b.Clients, c)
	}
	return rows.Err()
}

// List devuelve todos los botusers con sus clientes asociados.
func (r *BotuserRepo) List() ([]*entity.Botuser, error) {
	query := `SELECT ` + botuserColumns + ` FROM botusers ORDER BY id`
	return r.list(query)
}

// ListByClient devuelve los botusers vinculados a un cliente.
func (r *BotuserRepo) ListByClient(clientID string) ([]*entity.Botuser, error) {
	query := `
		SELECT b.id, b.name, b.phone, b.email, b.create_user, b.can_sos, b.admin_pdf, b.manager, b.area, b.created_by
		FROM botusers b
		JOIN client_botusers cb ON cb.botuser_id = b.id
		WHERE cb.client_id = $1
		ORDER BY b.id`
	return r.list(query, clientID)
}

func (r *BotuserRepo) list(query string, args ...any) ([]*entity.Botuser, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list botusers: %w", err)
	}
	defer rows.Close()

	var botusers []*entity.Botuser
	for rows.Next() {
		b, err := scanBotuser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan botuser: %w", err)
		}
		botusers = append(botusers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, b := range botusers {
		if err := r.loadClients(b); err != nil {
			return nil, err
		}
	}
	return botusers, nil
}

// Update persiste los campos mutables del botuser.
func (r *BotuserRepo) Update(botuser *entity.Botuser) error {
	query := `
		UPDATE botusers
		SET name = $2, phone = $3, email = $4, create_user = $5, can_sos = $6,
		    admin_pdf = $7, manager = $8, area = $9, created_by = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		botuser.ID, botuser.Name, botuser.Phone, botuser.Email, botuser.CreateUser,
		botuser.CanSOS, botuser.AdminPdf, botuser.Manager, botuser.Area, botuser.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update botuser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddClients suma asociaciones sin quitar las existentes; repetir un vínculo
// no es error.
func (r *BotuserRepo) AddClients(botuserID int64, clientIDs []string) error {
	query := `
		INSERT INTO client_botusers (client_id, botuser_id)
		SELECT unnest($2::text[]), $1
		ON CONFLICT DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, botuserID, clientIDs)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("add botuser clients: %w", err)
	}
	return nil
}

// ReplaceClients reemplaza el conjunto completo de asociaciones.
func (r *BotuserRepo) ReplaceClients(botuserID int64, clientIDs []string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM client_botusers WHERE botuser_id = $1`, botuserID)
	if err != nil {
		return fmt.Errorf("clear botuser clients: %w", err)
	}
	if len(clientIDs) == 0 {
		return nil
	}
	return r.AddClients(botuserID, clientIDs)
}

// Delete elimina un botuser y sus asociaciones.
func (r *BotuserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM client_botusers WHERE botuser_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete botuser links: %w", err)
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM botusers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete botuser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
