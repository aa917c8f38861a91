package dto

// ClientResponse salida de un cliente. Email siempre se serializa como array.
type ClientResponse struct {
	ID      string   `json:"id"`
	Email   []string `json:"email"`
	Info    string   `json:"info"`
	Vip     string   `json:"vip,omitempty"`
	Vipmail string   `json:"vipmail,omitempty"`
	Testing bool     `json:"testing"`
}

// CreateClientRequest entrada para crear un cliente. Si ID viene vacío el
// backend genera un código único.
type CreateClientRequest struct {
	ID      string   `json:"id"`
	Email   []string `json:"email"`
	Info    string   `json:"info"`
	Vip     string   `json:"vip"`
	Vipmail string   `json:"vipmail"`
	Testing bool     `json:"testing"`
}

// UpdateClientRequest actualización completa por ID del cuerpo.
type UpdateClientRequest struct {
	ID      string   `json:"id" validate:"required"`
	Email   []string `json:"email"`
	Info    string   `json:"info"`
	Vip     string   `json:"vip"`
	Vipmail string   `json:"vipmail"`
	Testing bool     `json:"testing"`
}

// ClientEmailResponse email global (primera dirección) de un cliente.
type ClientEmailResponse struct {
	Email string `json:"email"`
}
