package usecase

import (
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// BotuserUseCase casos de uso para usuarios del bot y sus vínculos con
// clientes. El teléfono es la clave natural del upsert.
type BotuserUseCase struct {
	repo       repository.BotuserRepository
	clientRepo repository.ClientRepository
}

// NewBotuserUseCase construye el caso de uso.
func NewBotuserUseCase(repo repository.BotuserRepository, clientRepo repository.ClientRepository) *BotuserUseCase {
	return &BotuserUseCase{repo: repo, clientRepo: clientRepo}
}

// Upsert alta/actualización por teléfono. Valida el lote completo de clientes
// antes de mutar nada. Si el teléfono ya existe, actualiza los campos y SUMA
// las asociaciones (created=false); si no, crea y deja exactamente esas
// asociaciones (created=true).
func (uc *BotuserUseCase) Upsert(in dto.UpsertBotuserRequest) (*dto.BotuserResponse, bool, error) {
	if in.Phone == "" || len(in.ClientIDs) == 0 {
		return nil, false, domain.ErrInvalidInput
	}
	if !validArea(in.Area) {
		return nil, false, domain.ErrInvalidInput
	}
	missing, err := uc.clientRepo.MissingIDs(in.ClientIDs)
	if err != nil {
		return nil, false, err
	}
	if len(missing) > 0 {
		return nil, false, &domain.MissingClientsError{IDs: missing}
	}

	existing, err := uc.repo.GetByPhone(in.Phone)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		existing.Name = in.Name
		existing.Email = in.Email
		existing.CreateUser = in.CreateUser
		existing.CanSOS = in.CanSOS
		existing.AdminPdf = in.AdminPdf
		existing.Manager = in.Manager
		existing.Area = in.Area
		existing.CreatedBy = in.CreatedBy
		if err := uc.repo.Update(existing); err != nil {
			return nil, false, err
		}
		if err := uc.repo.AddClients(existing.ID, in.ClientIDs); err != nil {
			return nil, false, err
		}
		refreshed, err := uc.repo.GetByID(existing.ID)
		if err != nil {
			return nil, false, err
		}
		return toBotuserResponse(refreshed), false, nil
	}

	botuser := &entity.Botuser{
		Name:       in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		CreateUser: in.CreateUser,
		CanSOS:     in.CanSOS,
		AdminPdf:   in.AdminPdf,
		Manager:    in.Manager,
		Area:       in.Area,
		CreatedBy:  in.CreatedBy,
	}
	if err := uc.repo.Create(botuser); err != nil {
		return nil, false, err
	}
	if err := uc.repo.ReplaceClients(botuser.ID, in.ClientIDs); err != nil {
		return nil, false, err
	}
	created, err := uc.repo.GetByID(botuser.ID)
	if err != nil {
		return nil, false, err
	}
	return toBotuserResponse(created), true, nil
}

// List devuelve todos los botusers con sus clientes.
func (uc *BotuserUseCase) List() ([]dto.BotuserResponse, error) {
	botusers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toBotuserResponses(botusers), nil
}

// ListByClient devuelve los botusers vinculados a un cliente.
func (uc *BotuserUseCase) ListByClient(clientID string) ([]dto.BotuserResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	botusers, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return toBotuserResponses(botusers), nil
}

// GetByPhone devuelve un botuser por teléfono.
func (uc *BotuserUseCase) GetByPhone(phone string) (*dto.BotuserResponse, error) {
	botuser, err := uc.repo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if botuser == nil {
		return nil, domain.ErrNotFound
	}
	return toBotuserResponse(botuser), nil
}

// GetByID devuelve un botuser por id.
func (uc *BotuserUseCase) GetByID(id int64) (*dto.BotuserResponse, error) {
	botuser, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if botuser == nil {
		return nil, domain.ErrNotFound
	}
	return toBotuserResponse(botuser), nil
}

// Update actualización parcial por id. Si vienen clientIds el conjunto de
// asociaciones se REEMPLAZA por completo tras validar el lote.
func (uc *BotuserUseCase) Update(id int64, in dto.UpdateBotuserRequest) (*dto.BotuserResponse, error) {
	botuser, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if botuser == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClientIDs != nil {
		missing, err := uc.clientRepo.MissingIDs(in.ClientIDs)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			return nil, &domain.MissingClientsError{IDs: missing}
		}
	}
	if in.Name != nil {
		botuser.Name = *in.Name
	}
	if in.Phone != nil {
		botuser.Phone = *in.Phone
	}
	if in.Email != nil {
		botuser.Email = *in.Email
	}
	if in.CreateUser != nil {
		botuser.CreateUser = *in.CreateUser
	}
	if in.CanSOS != nil {
		botuser.CanSOS = *in.CanSOS
	}
	if in.AdminPdf != nil {
		botuser.AdminPdf = *in.AdminPdf
	}
	if in.Manager != nil {
		botuser.Manager = *in.Manager
	}
	if in.Area != nil {
		if !validArea(*in.Area) {
			return nil, domain.ErrInvalidInput
		}
		botuser.Area = *in.Area
	}
	if in.CreatedBy != nil {
		botuser.CreatedBy = *in.CreatedBy
	}
	if err := uc.repo.Update(botuser); err != nil {
		return nil, err
	}
	if in.ClientIDs != nil {
		if err := uc.repo.ReplaceClients(id, in.ClientIDs); err != nil {
			return nil, err
		}
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toBotuserResponse(updated), nil
}

// Delete elimina un botuser y sus asociaciones.
func (uc *BotuserUseCase) Delete(id int64) error {
	botuser, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if botuser == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validArea acepta vacío (sin área) o una de las áreas conocidas.
func validArea(area string) bool {
	if area == "" {
		return true
	}
	for _, a := range entity.BotuserAreas {
		if a == area {
			return true
		}
	}
	return false
}

func toBotuserResponse(b *entity.Botuser) *dto.BotuserResponse {
	if b == nil {
		return nil
	}
	clients := make([]dto.ClientResponse, 0, len(b.Clients))
	for i := range b.Clients {
		clients = append(clients, *toClientResponse(&b.Clients[i]))
	}
	return &dto.BotuserResponse{
		ID:         b.ID,
		Name:       b.Name,
		Phone:      b.Phone,
		Email:      b.Email,
		CreateUser: b.CreateUser,
		CanSOS:     b.CanSOS,
		AdminPdf:   b.AdminPdf,
		Manager:    b.Manager,
		Area:       b.Area,
		CreatedBy:  b.CreatedBy,
		Clients:    clients,
	}
}

func toBotuserResponses(botusers []*entity.Botuser) []dto.BotuserResponse {
	out := make([]dto.BotuserResponse, 0, len(botusers))
	for _, b := range botusers {
		out = append(out, *toBotuserResponse(b))
	}
	return out
}
