package freshdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/pkg/config"
)

var _ ports.Helpdesk = (*Client)(nil)

// Client habla con la API v2 de Freshdesk. La autenticación es Basic con la
// API key como usuario y "X" como contraseña.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient construye el cliente con las credenciales inyectadas.
func NewClient(cfg config.FreshdeskConfig) *Client {
	return &Client{
		baseURL: cfg.Domain,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.apiKey, "X")
	return req, nil
}

// do ejecuta la request y decodifica el JSON en out. Cualquier status fuera
// de 2xx se preserva como *ports.HelpdeskError para el passthrough.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("freshdesk: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &ports.HelpdeskError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("freshdesk: decode: %w", err)
	}
	return nil
}

// ListTickets lista tickets con los filtros soportados por GET /tickets.
func (c *Client) ListTickets(ctx context.Context, f ports.TicketFilter) ([]ports.HelpdeskTicket, error) {
	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Email != "" {
		q.Set("email", f.Email)
	}
	if f.GroupID != 0 {
		q.Set("group_id", strconv.FormatInt(f.GroupID, 10))
	}
	if f.AgentID != 0 {
		q.Set("agent_id", strconv.FormatInt(f.AgentID, 10))
	}
	path := "/tickets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var tickets []ports.HelpdeskTicket
	if err := c.do(req, &tickets); err != nil {
		return nil, err
	}
	return filterTickets(tickets, f), nil
}

// filterTickets aplica el filtro de status, que GET /tickets no soporta como
// query param (exige el endpoint de search con otra cuota).
func filterTickets(tickets []ports.HelpdeskTicket, f ports.TicketFilter) []ports.HelpdeskTicket {
	if f.Status == 0 {
		return tickets
	}
	out := make([]ports.HelpdeskTicket, 0, len(tickets))
	for _, t := range tickets {
		if f.Status != 0 && t.Status != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SearchTickets usa el endpoint de búsqueda con un query "campo:valor".
func (c *Client) SearchTickets(ctx context.Context, query string) ([]ports.HelpdeskTicket, error) {
	path := "/search/tickets?query=" + url.QueryEscape(`"`+query+`"`)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var result struct {
		Results []ports.HelpdeskTicket `json:"results"`
		Total   int                    `json:"total"`
	}
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// FindContact devuelve el id de contacto para un email, o 0 si no existe.
func (c *Client) FindContact(ctx context.Context, email string) (int64, error) {
	path := "/contacts?email=" + url.QueryEscape(email)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}
	var contacts []struct {
		ID int64 `json:"id"`
	}
	if err := c.do(req, &contacts); err != nil {
		return 0, err
	}
	if len(contacts) == 0 {
		return 0, nil
	}
	return contacts[0].ID, nil
}

// GetTicket devuelve un ticket por id.
func (c *Client) GetTicket(ctx context.Context, id int64) (*ports.HelpdeskTicket, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var ticket ports.HelpdeskTicket
	if err := c.do(req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListConversations devuelve el hilo de un ticket.
func (c *Client) ListConversations(ctx context.Context, ticketID int64) ([]ports.HelpdeskConversation, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d/conversations", ticketID), nil)
	if err != nil {
		return nil, err
	}
	var conversations []ports.HelpdeskConversation
	if err := c.do(req, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// CreateTicket da de alta un ticket. Con adjuntos arma multipart/form-data;
// sin adjuntos manda JSON plano.
func (c *Client) CreateTicket(ctx context.Context, in ports.CreateHelpdeskTicket) (*ports.HelpdeskTicket, error) {
	if len(in.Attachments) == 0 {
		return c.createJSON(ctx, in)
	}
	return c.createMultipart(ctx, in)
}

func (c *Client) createJSON(ctx context.Context, in ports.CreateHelpdeskTicket) (*ports.HelpdeskTicket, error) {
	payload := map[string]any{
		"subject":     in.Subject,
		"description": in.Description,
		"email":       in.Email,
		"priority":    in.Priority,
		"status":      in.Status,
	}
	if len(in.CustomFields) > 0 {
		payload["custom_fields"] = in.CustomFields
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/tickets", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	var ticket ports.HelpdeskTicket
	if err := c.do(req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) createMultipart(ctx context.Context, in ports.CreateHelpdeskTicket) (*ports.HelpdeskTicket, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("subject", in.Subject)
	_ = w.WriteField("description", in.Description)
	_ = w.WriteField("email", in.Email)
	_ = w.WriteField("priority", strconv.Itoa(in.Priority))
	_ = w.WriteField("status", strconv.Itoa(in.Status))
	for key, value := range in.CustomFields {
		_ = w.WriteField(fmt.Sprintf("custom_fields[%s]", key), fmt.Sprint(value))
	}
	for _, att := range in.Attachments {
		part, err := w.CreateFormFile("attachments[]", att.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, att.Content); err != nil {
			return nil, fmt.Errorf("freshdesk: copiar adjunto %s: %w", att.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/tickets", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	var ticket ports.HelpdeskTicket
	if err := c.do(req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}
