package usecase

import (
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// TicketUseCase tickets del portal, registro mínimo id + usuario.
type TicketUseCase struct {
	repo     repository.TicketRepository
	userRepo repository.UserRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(repo repository.TicketRepository, userRepo repository.UserRepository) *TicketUseCase {
	return &TicketUseCase{repo: repo, userRepo: userRepo}
}

// Create registra un ticket para un usuario existente.
func (uc *TicketUseCase) Create(in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.UserID == 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	ticket := &entity.Ticket{UserID: in.UserID}
	if err := uc.repo.Create(ticket); err != nil {
		return nil, err
	}
	return &dto.TicketResponse{ID: ticket.ID, UserID: ticket.UserID}, nil
}

// GetByID devuelve un ticket.
func (uc *TicketUseCase) GetByID(id int64) (*dto.TicketResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TicketResponse{ID: ticket.ID, UserID: ticket.UserID}, nil
}

// List devuelve todos los tickets o los de un usuario.
func (uc *TicketUseCase) List(userID int64) ([]dto.TicketResponse, error) {
	var tickets []*entity.Ticket
	var err error
	if userID > 0 {
		tickets, err = uc.repo.ListByUser(userID)
	} else {
		tickets, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.TicketResponse{ID: t.ID, UserID: t.UserID})
	}
	return out, nil
}

// BotticketUseCase tickets generados por el bot, por cliente.
type BotticketUseCase struct {
	repo       repository.BotticketRepository
	clientRepo repository.ClientRepository
}

// NewBotticketUseCase construye el caso de uso.
func NewBotticketUseCase(repo repository.BotticketRepository, clientRepo repository.ClientRepository) *BotticketUseCase {
	return &BotticketUseCase{repo: repo, clientRepo: clientRepo}
}

// Create registra un ticket de bot para un cliente existente.
func (uc *BotticketUseCase) Create(in dto.CreateBotticketRequest) (*dto.BotticketResponse, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	ticket := &entity.Botticket{ClientID: in.ClientID}
	if err := uc.repo.Create(ticket); err != nil {
		return nil, err
	}
	return &dto.BotticketResponse{ID: ticket.ID, ClientID: ticket.ClientID}, nil
}

// GetByID devuelve un ticket de bot.
func (uc *BotticketUseCase) GetByID(id int64) (*dto.BotticketResponse, error) {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BotticketResponse{ID: ticket.ID, ClientID: ticket.ClientID}, nil
}

// List devuelve todos los tickets de bot o los de un cliente.
func (uc *BotticketUseCase) List(clientID string) ([]dto.BotticketResponse, error) {
	var tickets []*entity.Botticket
	var err error
	if clientID != "" {
		tickets, err = uc.repo.ListByClient(clientID)
	} else {
		tickets, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.BotticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.BotticketResponse{ID: t.ID, ClientID: t.ClientID})
	}
	return out, nil
}

// OpticketUseCase tickets operativos internos del equipo de soporte.
type OpticketUseCase struct {
	repo repository.OpticketRepository
}

// NewOpticketUseCase construye el caso de uso.
func NewOpticketUseCase(repo repository.OpticketRepository) *OpticketUseCase {
	return &OpticketUseCase{repo: repo}
}

// Create registra un ticket operativo. Name y detail son obligatorios.
func (uc *OpticketUseCase) Create(in dto.CreateOpticketRequest) (*dto.OpticketResponse, error) {
	if in.Name == "" || in.Detail == "" {
		return nil, domain.ErrInvalidInput
	}
	ticket := &entity.Opticket{
		Name:   in.Name,
		Client: in.Client,
		Detail: in.Detail,
	}
	if err := uc.repo.Create(ticket); err != nil {
		return nil, err
	}
	return toOpticketResponse(ticket), nil
}

// List devuelve todos los tickets operativos.
func (uc *OpticketUseCase) List() ([]dto.OpticketResponse, error) {
	tickets, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, *toOpticketResponse(t))
	}
	return out, nil
}

// Delete elimina un ticket operativo.
func (uc *OpticketUseCase) Delete(id int64) error {
	ticket, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toOpticketResponse(t *entity.Opticket) *dto.OpticketResponse {
	if t == nil {
		return nil
	}
	return &dto.OpticketResponse{
		ID:       t.ID,
		Name:     t.Name,
		Client:   t.Client,
		Detail:   t.Detail,
		Resolved: t.Resolved,
	}
}
