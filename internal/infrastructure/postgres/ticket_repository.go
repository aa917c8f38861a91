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

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación del puerto TicketRepository sobre PostgreSQL.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador para tickets del portal. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

// Create registra un ticket y completa el ID generado.
func (r *TicketRepo) Create(ticket *entity.Ticket) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO tickets (user_id) VALUES ($1) RETURNING id`, ticket.UserID,
	).Scan(&ticket.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket.
func (r *TicketRepo) GetByID(id int64) (*entity.Ticket, error) {
	var t entity.Ticket
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id FROM tickets WHERE id = $1`, id).Scan(&t.ID, &t.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// List devuelve todos los tickets.
func (r *TicketRepo) List() ([]*entity.Ticket, error) {
	return r.list(`SELECT id, user_id FROM tickets ORDER BY id`)
}

// ListByUser devuelve los tickets de un usuario.
func (r *TicketRepo) ListByUser(userID int64) ([]*entity.Ticket, error) {
	return r.list(`SELECT id, user_id FROM tickets WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *TicketRepo) list(query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(&t.ID, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, &t)
	}
	return tickets, rows.Err()
}

var _ repository.BotticketRepository = (*BotticketRepo)(nil)

// BotticketRepo implementación del puerto BotticketRepository sobre PostgreSQL.
type BotticketRepo struct {
	q Querier
}

// NewBotticketRepository construye el adaptador para tickets del bot. Pasar pool o tx (Querier).
func NewBotticketRepository(q Querier) *BotticketRepo {
	return &BotticketRepo{q: q}
}

// Create registra un ticket de bot y completa el ID generado.
func (r *BotticketRepo) Create(ticket *entity.Botticket) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO bottickets (client_id) VALUES ($1) RETURNING id`, ticket.ClientID,
	).Scan(&ticket.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("insert botticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket de bot.
func (r *BotticketRepo) GetByID(id int64) (*entity.Botticket, error) {
	var t entity.Botticket
	err := r.q.QueryRow(context.Background(),
		`SELECT id, client_id FROM bottickets WHERE id = $1`, id).Scan(&t.ID, &t.ClientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get botticket: %w", err)
	}
	return &t, nil
}

// List devuelve todos los tickets de bot.
func (r *BotticketRepo) List() ([]*entity.Botticket, error) {
	return r.list(`SELECT id, client_id FROM bottickets ORDER BY id`)
}

// ListByClient devuelve los tickets de bot de un cliente.
func (r *BotticketRepo) ListByClient(clientID string) ([]*entity.Botticket, error) {
	return r.list(`SELECT id, client_id FROM bottickets WHERE client_id = $1 ORDER BY id`, clientID)
}

func (r *BotticketRepo) list(query string, args ...any) ([]*entity.Botticket, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bottickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Botticket
	for rows.Next() {
		var t entity.Botticket
		if err := rows.Scan(&t.ID, &t.ClientID); err != nil {
			return nil, fmt.Errorf("scan botticket: %w", err)
		}
		tickets = append(tickets, &t)
	}
	return tickets, rows.Err()
}

var _ repository.OpticketRepository = (*OpticketRepo)(nil)

// OpticketRepo implementación del puerto OpticketRepository sobre PostgreSQL.
type OpticketRepo struct {
	q Querier
}

// NewOpticketRepository construye el adaptador para tickets operativos. Pasar pool o tx (Querier).
func NewOpticketRepository(q Querier) *OpticketRepo {
	return &OpticketRepo{q: q}
}

// Create registra un ticket operativo y completa el ID generado.
func (r *OpticketRepo) Create(ticket *entity.Opticket) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO optickets (name, client, detail, resolved) VALUES ($1, $2, $3, $4) RETURNING id`,
		ticket.Name, ticket.Client, ticket.Detail, ticket.Resolved,
	).Scan(&ticket.ID)
	if err != nil {
		return fmt.Errorf("insert opticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket operativo.
func (r *OpticketRepo) GetByID(id int64) (*entity.Opticket, error) {
	var t entity.Opticket
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, client, detail, resolved FROM optickets WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Client, &t.Detail, &t.Resolved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opticket: %w", err)
	}
	return &t, nil
}

// List devuelve todos los tickets operativos.
func (r *OpticketRepo) List() ([]*entity.Opticket, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, client, detail, resolved FROM optickets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list optickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Opticket
	for rows.Next() {
		var t entity.Opticket
		if err := rows.Scan(&t.ID, &t.Name, &t.Client, &t.Detail, &t.Resolved); err != nil {
			return nil, fmt.Errorf("scan opticket: %w", err)
		}
		tickets = append(tickets, &t)
	}
	return tickets, rows.Err()
}

// Delete elimina un ticket operativo.
func (r *OpticketRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM optickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete opticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
