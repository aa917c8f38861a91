package entity

// Pc es un equipo relevado en campo, asociado a un Client. El TeamviewerID
// funciona como clave natural para los upserts que llegan desde la herramienta
// de inventario remoto.
type Pc struct {
	ID            int64
	Alias         string
	TeamviewerID  string
	RazonSocial   string
	Bandera       string
	Identificador string
	Ciudad        string
	Area          string
	Prefijo       int
	Extras        int
	ClientID      *string
	Client        *Client
}

// Computer es la tabla histórica de equipos por usuario (flota legada).
type Computer struct {
	ID           int64
	Alias        string
	TeamviewerID string
	Zone         string
	SortOrder    int
	UserID       *int64
	User         *User
}
