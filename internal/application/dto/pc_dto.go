package dto

// PcResponse salida de un equipo de inventario.
type PcResponse struct {
	ID            int64           `json:"id"`
	Alias         string          `json:"alias"`
	TeamviewerID  string          `json:"teamviewer_id"`
	RazonSocial   string          `json:"razonSocial"`
	Bandera       string          `json:"bandera"`
	Identificador string          `json:"identificador"`
	Ciudad        string          `json:"ciudad"`
	Area          string          `json:"area"`
	Prefijo       int             `json:"prefijo"`
	Extras        int             `json:"extras"`
	ClientID      *string         `json:"clientId"`
	Client        *ClientResponse `json:"client,omitempty"`
}

// CreatePcRequest alta de un equipo.
type CreatePcRequest struct {
	Alias         string  `json:"alias"`
	TeamviewerID  string  `json:"teamviewer_id" validate:"required"`
	RazonSocial   string  `json:"razonSocial"`
	Bandera       string  `json:"bandera"`
	Identificador string  `json:"identificador"`
	Ciudad        string  `json:"ciudad"`
	Area          string  `json:"area"`
	Prefijo       int     `json:"prefijo"`
	Extras        int     `json:"extras"`
	ClientID      *string `json:"clientId"`
}

// UpdatePcRequest actualización parcial por teamviewer_id o por id.
type UpdatePcRequest struct {
	Alias         *string `json:"alias"`
	TeamviewerID  *string `json:"teamviewer_id"`
	RazonSocial   *string `json:"razonSocial"`
	Bandera       *string `json:"bandera"`
	Identificador *string `json:"identificador"`
	Ciudad        *string `json:"ciudad"`
	Area          *string `json:"area"`
	Prefijo       *int    `json:"prefijo"`
	Extras        *int    `json:"extras"`
	ClientID      *string `json:"clientId"`
}

// ComputerResponse equipo asignado a un usuario del portal.
type ComputerResponse struct {
	ID           int64         `json:"id"`
	Alias        string        `json:"alias"`
	TeamviewerID string        `json:"teamviewer_id"`
	Zone         string        `json:"zone"`
	SortOrder    int           `json:"sortOrder"`
	UserID       *int64        `json:"userId"`
	User         *UserResponse `json:"user,omitempty"`
}

// UpdateComputerRequest actualización parcial de un computer.
type UpdateComputerRequest struct {
	Alias        *string `json:"alias"`
	TeamviewerID *string `json:"teamviewer_id"`
	Zone         *string `json:"zone"`
	SortOrder    *int    `json:"sortOrder"`
	UserID       *int64  `json:"userId"`
}
