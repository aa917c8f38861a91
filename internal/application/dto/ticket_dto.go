package dto

// TicketResponse ticket simple ligado a un usuario del portal.
type TicketResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

// CreateTicketRequest alta de ticket de portal.
type CreateTicketRequest struct {
	UserID int64 `json:"userId" validate:"required"`
}

// BotticketResponse ticket generado por el bot, ligado a un cliente.
type BotticketResponse struct {
	ID       int64  `json:"id"`
	ClientID string `json:"clientId"`
}

// CreateBotticketRequest alta de ticket de bot.
type CreateBotticketRequest struct {
	ClientID string `json:"clientId" validate:"required"`
}

// OpticketResponse ticket operativo interno.
type OpticketResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Client   string `json:"client"`
	Detail   string `json:"detail"`
	Resolved bool   `json:"resolved"`
}

// CreateOpticketRequest alta de ticket operativo.
type CreateOpticketRequest struct {
	Name   string `json:"name" validate:"required"`
	Client string `json:"client"`
	Detail string `json:"detail"`
}
