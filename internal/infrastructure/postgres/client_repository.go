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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL. El
// email es un text[]: la primera posición actúa como dirección global.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, email, info, vip, vipmail, testing`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Emails, &c.Info, &c.Vip, &c.Vipmail, &c.Testing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, email, info, vip, vipmail, testing)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Emails, client.Info, client.Vip, client.Vipmail, client.Testing)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por su código.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Update persiste los campos mutables del cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET email = $2, info = $3, vip = $4, vipmail = $5, testing = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		client.ID, client.Emails, client.Info, client.Vip, client.Vipmail, client.Testing)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// FindByInfoAndEmail busca la tupla exacta (info, email); el email matchea
// contra cualquiera de las direcciones del array.
func (r *ClientRepo) FindByInfoAndEmail(info, email string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE info = $1 AND $2 = ANY(email)`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, info, email))
	if err != nil {
		return nil, fmt.Errorf("find client by info and email: %w", err)
	}
	return c, nil
}

// MissingIDs devuelve los ids del lote que no existen en la tabla.
func (r *ClientRepo) MissingIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT wanted.id
		FROM unnest($1::text[]) AS wanted(id)
		LEFT JOIN clients c ON c.id = wanted.id
		WHERE c.id IS NULL`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("check client ids: %w", err)
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan missing id: %w", err)
		}
		missing = append(missing, id)
	}
	return missing, rows.Err()
}
