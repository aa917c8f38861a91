package usecase

import (
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/domain"
	"github.com/siges-soporte/siges-api/internal/domain/entity"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// expandArea traduce las áreas paraguas del bot a las áreas concretas de la
// tabla: P cubre los puestos de planta y A los administrativos.
func expandArea(area string) []string {
	switch area {
	case "":
		return nil
	case "P":
		return []string{"P", "N", "L", "B", "R"}
	case "A":
		return []string{"A", "S", "V"}
	default:
		return []string{area}
	}
}

// PcUseCase casos de uso del inventario de equipos por cliente. Los upserts
// llegan desde la herramienta de inventario remoto con el teamviewer_id como
// clave natural.
type PcUseCase struct {
	repo       repository.PcRepository
	clientRepo repository.ClientRepository
}

// NewPcUseCase construye el caso de uso.
func NewPcUseCase(repo repository.PcRepository, clientRepo repository.ClientRepository) *PcUseCase {
	return &PcUseCase{repo: repo, clientRepo: clientRepo}
}

// GetByID devuelve un equipo.
func (uc *PcUseCase) GetByID(id int64) (*dto.PcResponse, error) {
	pc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, domain.ErrNotFound
	}
	return toPcResponse(pc), nil
}

// List devuelve equipos: todos, por cliente, o por cliente y área (con la
// expansión de áreas paraguas).
func (uc *PcUseCase) List(clientID, area string) ([]dto.PcResponse, error) {
	var pcs []*entity.Pc
	var err error
	if clientID == "" {
		pcs, err = uc.repo.List()
	} else {
		client, cerr := uc.clientRepo.GetByID(clientID)
		if cerr != nil {
			return nil, cerr
		}
		if client == nil {
			return nil, domain.ErrClientNotFound
		}
		pcs, err = uc.repo.ListByClient(clientID, expandArea(area))
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.PcResponse, 0, len(pcs))
	for _, pc := range pcs {
		out = append(out, *toPcResponse(pc))
	}
	return out, nil
}

// Upsert crea o actualiza por teamviewer_id: si ya hay filas con ese id las
// actualiza todas; si no, crea una nueva. Devuelve si hubo creación.
func (uc *PcUseCase) Upsert(in dto.CreatePcRequest) (*dto.PcResponse, bool, error) {
	if in.TeamviewerID == "" {
		return nil, false, domain.ErrInvalidInput
	}
	if in.ClientID != nil && *in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil {
			return nil, false, err
		}
		if client == nil {
			return nil, false, domain.ErrClientNotFound
		}
	}
	pc := &entity.Pc{
		Alias:         in.Alias,
		TeamviewerID:  in.TeamviewerID,
		RazonSocial:   in.RazonSocial,
		Bandera:       in.Bandera,
		Identificador: in.Identificador,
		Ciudad:        in.Ciudad,
		Area:          in.Area,
		Prefijo:       in.Prefijo,
		Extras:        in.Extras,
		ClientID:      in.ClientID,
	}
	updated, err := uc.repo.UpdateByTeamviewerID(pc)
	if err != nil {
		return nil, false, err
	}
	if updated > 0 {
		rows, err := uc.repo.ListByTeamviewerID(in.TeamviewerID)
		if err != nil {
			return nil, false, err
		}
		if len(rows) == 0 {
			return nil, false, domain.ErrNotFound
		}
		return toPcResponse(rows[0]), false, nil
	}
	if err := uc.repo.Create(pc); err != nil {
		return nil, false, err
	}
	return toPcResponse(pc), true, nil
}

// Update actualización parcial por id.
func (uc *PcUseCase) Update(id int64, in dto.UpdatePcRequest) (*dto.PcResponse, error) {
	pc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, domain.ErrNotFound
	}
	applyPcUpdate(pc, in)
	if err := uc.repo.Update(pc); err != nil {
		return nil, err
	}
	return toPcResponse(pc), nil
}

func applyPcUpdate(pc *entity.Pc, in dto.UpdatePcRequest) {
	if in.Alias != nil {
		pc.Alias = *in.Alias
	}
	if in.TeamviewerID != nil {
		pc.TeamviewerID = *in.TeamviewerID
	}
	if in.RazonSocial != nil {
		pc.RazonSocial = *in.RazonSocial
	}
	if in.Bandera != nil {
		pc.Bandera = *in.Bandera
	}
	if in.Identificador != nil {
		pc.Identificador = *in.Identificador
	}
	if in.Ciudad != nil {
		pc.Ciudad = *in.Ciudad
	}
	if in.Area != nil {
		pc.Area = *in.Area
	}
	if in.Prefijo != nil {
		pc.Prefijo = *in.Prefijo
	}
	if in.Extras != nil {
		pc.Extras = *in.Extras
	}
	if in.ClientID != nil {
		if *in.ClientID == "" {
			pc.ClientID = nil
		} else {
			pc.ClientID = in.ClientID
		}
	}
}

func toPcResponse(pc *entity.Pc) *dto.PcResponse {
	if pc == nil {
		return nil
	}
	return &dto.PcResponse{
		ID:            pc.ID,
		Alias:         pc.Alias,
		TeamviewerID:  pc.TeamviewerID,
		RazonSocial:   pc.RazonSocial,
		Bandera:       pc.Bandera,
		Identificador: pc.Identificador,
		Ciudad:        pc.Ciudad,
		Area:          pc.Area,
		Prefijo:       pc.Prefijo,
		Extras:        pc.Extras,
		ClientID:      pc.ClientID,
		Client:        toClientResponse(pc.Client),
	}
}

// ComputerUseCase casos de uso de la flota legada por usuario.
type ComputerUseCase struct {
	repo repository.ComputerRepository
}

// NewComputerUseCase construye el caso de uso.
func NewComputerUseCase(repo repository.ComputerRepository) *ComputerUseCase {
	return &ComputerUseCase{repo: repo}
}

// GetByID devuelve un equipo de la flota.
func (uc *ComputerUseCase) GetByID(id int64) (*dto.ComputerResponse, error) {
	computer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if computer == nil {
		return nil, domain.ErrNotFound
	}
	return toComputerResponse(computer), nil
}

// List devuelve la flota completa o filtrada por usuario y zona.
func (uc *ComputerUseCase) List(userID int64, zone string) ([]dto.ComputerResponse, error) {
	var computers []*entity.Computer
	var err error
	if userID > 0 {
		computers, err = uc.repo.ListByUserAndZone(userID, zone)
	} else {
		computers, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComputerResponse, 0, len(computers))
	for _, c := range computers {
		out = append(out, *toComputerResponse(c))
	}
	return out, nil
}

// Update actualización parcial de un equipo de la flota.
func (uc *ComputerUseCase) Update(id int64, in dto.UpdateComputerRequest) (*dto.ComputerResponse, error) {
	computer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if computer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Alias != nil {
		computer.Alias = *in.Alias
	}
	if in.TeamviewerID != nil {
		computer.TeamviewerID = *in.TeamviewerID
	}
	if in.Zone != nil {
		computer.Zone = *in.Zone
	}
	if in.SortOrder != nil {
		computer.SortOrder = *in.SortOrder
	}
	if in.UserID != nil {
		computer.UserID = in.UserID
	}
	if err := uc.repo.Update(computer); err != nil {
		return nil, err
	}
	return toComputerResponse(computer), nil
}

func toComputerResponse(c *entity.Computer) *dto.ComputerResponse {
	if c == nil {
		return nil
	}
	return &dto.ComputerResponse{
		ID:           c.ID,
		Alias:        c.Alias,
		TeamviewerID: c.TeamviewerID,
		Zone:         c.Zone,
		SortOrder:    c.SortOrder,
		UserID:       c.UserID,
		User:         toUserResponse(c.User),
	}
}
