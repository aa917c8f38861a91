package repository

import "github.com/siges-soporte/siges-api/internal/domain/entity"

// TicketRepository define el puerto para tickets del portal.
type TicketRepository interface {
	Create(ticket *entity.Ticket) error
	GetByID(id int64) (*entity.Ticket, error)
	List() ([]*entity.Ticket, error)
	ListByUser(userID int64) ([]*entity.Ticket, error)
}

// BotticketRepository define el puerto para tickets del bot.
type BotticketRepository interface {
	Create(ticket *entity.Botticket) error
	GetByID(id int64) (*entity.Botticket, error)
	List() ([]*entity.Botticket, error)
	ListByClient(clientID string) ([]*entity.Botticket, error)
}

// OpticketRepository define el puerto para tickets de operadores.
type OpticketRepository interface {
	Create(ticket *entity.Opticket) error
	GetByID(id int64) (*entity.Opticket, error)
	List() ([]*entity.Opticket, error)
	Delete(id int64) error
}
