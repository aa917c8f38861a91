package usecase

import (
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// TestingUseCase vistas de mantenimiento sobre los clientes marcados como
// testing. No muta nada: junta los datos de prueba para inspección rápida.
type TestingUseCase struct {
	clientRepo    repository.ClientRepository
	botuserRepo   repository.BotuserRepository
	botticketRepo repository.BotticketRepository
	pcRepo        repository.PcRepository
}

// NewTestingUseCase construye el caso de uso.
func NewTestingUseCase(clientRepo repository.ClientRepository, botuserRepo repository.BotuserRepository, botticketRepo repository.BotticketRepository, pcRepo repository.PcRepository) *TestingUseCase {
	return &TestingUseCase{
		clientRepo:    clientRepo,
		botuserRepo:   botuserRepo,
		botticketRepo: botticketRepo,
		pcRepo:        pcRepo,
	}
}

func (uc *TestingUseCase) testingClients() ([]*entity.Client, error) {
	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Client, 0)
	for _, c := range clients {
		if c.Testing {
			out = append(out, c)
		}
	}
	return out, nil
}

// Clients devuelve los clientes de prueba.
func (uc *TestingUseCase) Clients() ([]dto.ClientResponse, error) {
	clients, err := uc.testingClients()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Botusers devuelve los botusers vinculados a clientes de prueba, sin repetir.
func (uc *TestingUseCase) Botusers() ([]dto.BotuserResponse, error) {
	clients, err := uc.testingClients()
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]bool)
	out := make([]dto.BotuserResponse, 0)
	for _, c := range clients {
		botusers, err := uc.botuserRepo.ListByClient(c.ID)
		if err != nil {
			return nil, err
		}
		for _, b := range botusers {
			if seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			out = append(out, *toBotuserResponse(b))
		}
	}
	return out, nil
}

// Bottickets devuelve los tickets de bot de clientes de prueba.
func (uc *TestingUseCase) Bottickets() ([]dto.BotticketResponse, error) {
	clients, err := uc.testingClients()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BotticketResponse, 0)
	for _, c := range clients {
		tickets, err := uc.botticketRepo.ListByClient(c.ID)
		if err != nil {
			return nil, err
		}
		for _, t := range tickets {
			out = append(out, dto.BotticketResponse{ID: t.ID, ClientID: t.ClientID})
		}
	}
	return out, nil
}

// Pcs devuelve los equipos de clientes de prueba.
func (uc *TestingUseCase) Pcs() ([]dto.PcResponse, error) {
	clients, err := uc.testingClients()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PcResponse, 0)
	for _, c := range clients {
		pcs, err := uc.pcRepo.ListByClient(c.ID, nil)
		if err != nil {
			return nil, err
		}
		for _, pc := range pcs {
			out = append(out, *toPcResponse(pc))
		}
	}
	return out, nil
}

// ClientBotusers devuelve cada cliente de prueba con sus botusers asociados.
func (uc *TestingUseCase) ClientBotusers() ([]dto.ClientBotusersResponse, error) {
	clients, err := uc.testingClients()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientBotusersResponse, 0, len(clients))
	for _, c := range clients {
		botusers, err := uc.botuserRepo.ListByClient(c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ClientBotusersResponse{
			Client:   *toClientResponse(c),
			Botusers: toBotuserResponses(botusers),
		})
	}
	return out, nil
}
