package repository

import "github.com/siges-soporte/siges-api/internal/domain/entity"

// PcRepository define el puerto de persistencia para Pc (equipos por cliente).
type PcRepository interface {
	Create(pc *entity.Pc) error
	GetByID(id int64) (*entity.Pc, error)
	// List devuelve todos los equipos con la información del cliente.
	List() ([]*entity.Pc, error)
	// ListByClient filtra por cliente; si areas no está vacío restringe a esas áreas.
	ListByClient(clientID string, areas []string) ([]*entity.Pc, error)
	ListByTeamviewerID(teamviewerID string) ([]*entity.Pc, error)
	Update(pc *entity.Pc) error
	// UpdateByTeamviewerID actualiza todas las filas que comparten ese
	// teamviewer_id y devuelve cuántas tocó.
	UpdateByTeamviewerID(pc *entity.Pc) (int64, error)
}

// ComputerRepository define el puerto para la flota legada por usuario.
type ComputerRepository interface {
	GetByID(id int64) (*entity.Computer, error)
	// List devuelve todos los equipos con la información del usuario.
	List() ([]*entity.Computer, error)
	ListByUserAndZone(userID int64, zone string) ([]*entity.Computer, error)
	Update(computer *entity.Computer) error
}
