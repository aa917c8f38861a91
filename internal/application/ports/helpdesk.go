package ports

import (
	"context"
	"fmt"
	"io"
)

// HelpdeskTicket ticket tal como lo expone la mesa de ayuda externa.
type HelpdeskTicket struct {
	ID           int64          `json:"id"`
	Subject      string         `json:"subject"`
	Description  string         `json:"description_text,omitempty"`
	Status       int            `json:"status"`
	Priority     int            `json:"priority"`
	RequesterID  int64          `json:"requester_id"`
	Email        string         `json:"email,omitempty"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
}

// HelpdeskConversation mensaje del hilo de un ticket.
type HelpdeskConversation struct {
	ID        int64  `json:"id"`
	Body      string `json:"body_text"`
	Incoming  bool   `json:"incoming"`
	Private   bool   `json:"private"`
	FromEmail string `json:"from_email"`
	CreatedAt string `json:"created_at"`
}

// HelpdeskAttachment adjunto a reenviar con un ticket nuevo.
type HelpdeskAttachment struct {
	Name    string
	Content io.Reader
}

// TicketFilter filtros del listado de tickets de la mesa externa.
type TicketFilter struct {
	Page    int
	Status  int
	GroupID int64
	AgentID int64
	Email   string // filtra por email del solicitante
}

// CreateHelpdeskTicket datos de alta de un ticket en la mesa externa.
type CreateHelpdeskTicket struct {
	Subject      string
	Description  string
	Email        string
	Priority     int
	Status       int
	CustomFields map[string]any
	Attachments  []HelpdeskAttachment
}

// HelpdeskError preserva el status y el cuerpo que devolvió la mesa externa
// para que el handler pueda propagarlos tal cual.
type HelpdeskError struct {
	StatusCode int
	Body       string
}

func (e *HelpdeskError) Error() string {
	return fmt.Sprintf("helpdesk: status %d: %s", e.StatusCode, e.Body)
}

// Helpdesk abstrae la mesa de ayuda externa (Freshdesk).
type Helpdesk interface {
	ListTickets(ctx context.Context, f TicketFilter) ([]HelpdeskTicket, error)
	SearchTickets(ctx context.Context, query string) ([]HelpdeskTicket, error)
	// FindContact devuelve el id de contacto para un email, o 0 si no existe.
	FindContact(ctx context.Context, email string) (int64, error)
	GetTicket(ctx context.Context, id int64) (*HelpdeskTicket, error)
	ListConversations(ctx context.Context, ticketID int64) ([]HelpdeskConversation, error)
	CreateTicket(ctx context.Context, in CreateHelpdeskTicket) (*HelpdeskTicket, error)
}
