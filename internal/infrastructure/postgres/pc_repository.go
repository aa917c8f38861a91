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

var _ repository.PcRepository = (*PcRepo)(nil)

// PcRepo implementación del puerto PcRepository sobre PostgreSQL.
type PcRepo struct {
	q Querier
}

// NewPcRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewPcRepository(q Querier) *PcRepo {
	return &PcRepo{q: q}
}

const pcWithClientQuery = `
	SELECT p.id, p.alias, p.teamviewer_id, p.razon_social, p.bandera, p.identificador,
	       p.ciudad, p.area, p.prefijo, p.extras, p.client_id,
	       c.id, c.email, c.info, c.vip, c.vipmail, c.testing
	FROM pcs p
	LEFT JOIN clients c ON c.id = p.client_id`

func scanPcWithClient(row pgx.Row) (*entity.Pc, error) {
	var p entity.Pc
	var cID, cInfo, cVip, cVipmail *string
	var cEmails []string
	var cTesting *bool
	err := row.Scan(
		&p.ID, &p.Alias, &p.TeamviewerID, &p.RazonSocial, &p.Bandera, &p.Identificador,
		&p.Ciudad, &p.Area, &p.Prefijo, &p.Extras, &p.ClientID,
		&cID, &cEmails, &cInfo, &cVip, &cVipmail, &cTesting,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if cID != nil {
		p.Client = &entity.Client{
			ID:      *cID,
			Emails:  cEmails,
			Info:    deref(cInfo),
			Vip:     deref(cVip),
			Vipmail: deref(cVipmail),
			Testing: cTesting != nil && *cTesting,
		}
	}
	return &p, nil
}

// Create persiste un equipo nuevo y completa el ID generado.
func (r *PcRepo) Create(pc *entity.Pc) error {
	query := `
		INSERT INTO pcs (alias, teamviewer_id, razon_social, bandera, identificador, ciudad, area, prefijo, extras, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		pc.Alias, pc.TeamviewerID, pc.RazonSocial, pc.Bandera, pc.Identificador,
		pc.Ciudad, pc.Area, pc.Prefijo, pc.Extras, pc.ClientID,
	).Scan(&pc.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("insert pc: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo con su cliente.
func (r *PcRepo) GetByID(id int64) (*entity.Pc, error) {
	query := pcWithClientQuery + ` WHERE p.id = $1`
	pc, err := scanPcWithClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get pc: %w", err)
	}
	return pc, nil
}

// List devuelve todos los equipos con su cliente.
func (r *PcRepo) List() ([]*entity.Pc, error) {
	return r.list(pcWithClientQuery + ` ORDER BY p.id`)
}

// ListByClient filtra por cliente y opcionalmente por áreas.
func (r *PcRepo) ListByClient(clientID string, areas []string) ([]*entity.Pc, error) {
	if len(areas) == 0 {
		return r.list(pcWithClientQuery+` WHERE p.client_id = $1 ORDER BY p.id`, clientID)
	}
	return r.list(pcWithClientQuery+` WHERE p.client_id = $1 AND p.area = ANY($2::text[]) ORDER BY p.id`, clientID, areas)
}

// ListByTeamviewerID devuelve las filas que comparten un teamviewer_id.
func (r *PcRepo) ListByTeamviewerID(teamviewerID string) ([]*entity.Pc, error) {
	return r.list(pcWithClientQuery+` WHERE p.teamviewer_id = $1 ORDER BY p.id`, teamviewerID)
}

func (r *PcRepo) list(query string, args ...any) ([]*entity.Pc, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pcs: %w", err)
	}
	defer rows.Close()

	var pcs []*entity.Pc
	for rows.Next() {
		pc, err := scanPcWithClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pc: %w", err)
		}
		pcs = append(pcs, pc)
	}
	return pcs, rows.Err()
}

// Update persiste los campos mutables del equipo.
func (r *PcRepo) Update(pc *entity.Pc) error {
	query := `
		UPDATE pcs
		SET alias = $2, teamviewer_id = $3, razon_social = $4, bandera = $5,
		    identificador = $6, ciudad = $7, area = $8, prefijo = $9, extras = $10, client_id = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		pc.ID, pc.Alias, pc.TeamviewerID, pc.RazonSocial, pc.Bandera,
		pc.Identificador, pc.Ciudad, pc.Area, pc.Prefijo, pc.Extras, pc.ClientID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("update pc: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateByTeamviewerID actualiza todas las filas con ese teamviewer_id y
// devuelve cuántas tocó. Cero filas significa que el caller debe crear.
func (r *PcRepo) UpdateByTeamviewerID(pc *entity.Pc) (int64, error) {
	query := `
		UPDATE pcs
		SET alias = $2, razon_social = $3, bandera = $4, identificador = $5,
		    ciudad = $6, area = $7, prefijo = $8, extras = $9, client_id = $10
		WHERE teamviewer_id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		pc.TeamviewerID, pc.Alias, pc.RazonSocial, pc.Bandera, pc.Identificador,
		pc.Ciudad, pc.Area, pc.Prefijo, pc.Extras, pc.ClientID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrClientNotFound
		}
		return 0, fmt.Errorf("update pcs by teamviewer id: %w", err)
	}
	return tag.RowsAffected(), nil
}

var _ repository.ComputerRepository = (*ComputerRepo)(nil)

// ComputerRepo implementación del puerto ComputerRepository (flota legada).
type ComputerRepo struct {
	q Querier
}

// NewComputerRepository construye el adaptador para la flota legada. Pasar pool o tx (Querier).
func NewComputerRepository(q Querier) *ComputerRepo {
	return &ComputerRepo{q: q}
}

const computerWithUserQuery = `
	SELECT co.id, co.alias, co.teamviewer_id, co.zone, co.sort_order, co.user_id,
	       u.id, u.first_name, u.razon_social, u.email, u.role, u.status, u.owner, u.onboarding_completed, u.client_id
	FROM computers co
	LEFT JOIN users u ON u.id = co.user_id`

func scanComputerWithUser(row pgx.Row) (*entity.Computer, error) {
	var c entity.Computer
	var uID *int64
	var uFirstName, uRazonSocial, uEmail, uRole, uClientID *string
	var uStatus *int
	var uOwner, uOnboarding *bool
	err := row.Scan(
		&c.ID, &c.Alias, &c.TeamviewerID, &c.Zone, &c.SortOrder, &c.UserID,
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
		c.User = &entity.User{
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
	return &c, nil
}

// GetByID obtiene un equipo de la flota con su usuario.
func (r *ComputerRepo) GetByID(id int64) (*entity.Computer, error) {
	query := computerWithUserQuery + ` WHERE co.id = $1`
	c, err := scanComputerWithUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get computer: %w", err)
	}
	return c, nil
}

// List devuelve toda la flota con la información del usuario.
func (r *ComputerRepo) List() ([]*entity.Computer, error) {
	return r.list(computerWithUserQuery + ` ORDER BY co.sort_order, co.id`)
}

// ListByUserAndZone filtra por usuario y, si viene, por zona.
func (r *ComputerRepo) ListByUserAndZone(userID int64, zone string) ([]*entity.Computer, error) {
	if zone == "" {
		return r.list(computerWithUserQuery+` WHERE co.user_id = $1 ORDER BY co.sort_order, co.id`, userID)
	}
	return r.list(computerWithUserQuery+` WHERE co.user_id = $1 AND co.zone = $2 ORDER BY co.sort_order, co.id`, userID, zone)
}

func (r *ComputerRepo) list(query string, args ...any) ([]*entity.Computer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list computers: %w", err)
	}
	defer rows.Close()

	var computers []*entity.Computer
	for rows.Next() {
		c, err := scanComputerWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan computer: %w", err)
		}
		computers = append(computers, c)
	}
	return computers, rows.Err()
}

// Update persiste los campos mutables del equipo de flota.
func (r *ComputerRepo) Update(computer *entity.Computer) error {
	query := `
		UPDATE computers
		SET alias = $2, teamviewer_id = $3, zone = $4, sort_order = $5, user_id = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		computer.ID, computer.Alias, computer.TeamviewerID, computer.Zone,
		computer.SortOrder, computer.UserID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("update computer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
