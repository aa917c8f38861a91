package usecase

import (
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
	"github.com/siges-soporte/siges-api/pkg/codegen"
)

// maxCodeAttempts acota el loop de generación de códigos de cliente.
const maxCodeAttempts = 10

// ClientUseCase casos de uso CRUD para clientes. El ID es el código corto
// visible (AB1234): si el alta no trae uno, se genera acá.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. Con ID explícito ya tomado devuelve ErrConflict;
// sin ID intenta hasta maxCodeAttempts códigos aleatorios antes de rendirse
// con ErrCodeExhausted.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := &entity.Client{
		ID:      in.ID,
		Emails:  in.Email,
		Info:    in.Info,
		Vip:     in.Vip,
		Vipmail: in.Vipmail,
		Testing: in.Testing,
	}
	if client.ID != "" {
		existing, err := uc.repo.GetByID(client.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrConflict
		}
	} else {
		id, err := uc.generateID()
		if err != nil {
			return nil, err
		}
		client.ID = id
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func (uc *ClientUseCase) generateID() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := codegen.New()
		existing, err := uc.repo.GetByID(code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", domain.ErrCodeExhausted
}

// List devuelve todos los clientes.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// GetByID devuelve un cliente.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return toClientResponse(client), nil
}

// Update actualiza el cliente identificado por el ID del cuerpo.
func (uc *ClientUseCase) Update(in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	client.Emails = in.Email
	client.Info = in.Info
	client.Vip = in.Vip
	client.Vipmail = in.Vipmail
	client.Testing = in.Testing
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetEmail devuelve la dirección global (primera del array) de un cliente.
func (uc *ClientUseCase) GetEmail(clientID string) (*dto.ClientEmailResponse, error) {
	client, err := uc.repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	addr := client.GlobalEmail()
	if addr == "" {
		return nil, domain.ErrNotFound
	}
	return &dto.ClientEmailResponse{Email: addr}, nil
}
