package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/ports"
	"github.com/siges-soporte/siges-api/internal/domain/repository"
)

// FreshdeskHandler proxy hacia la mesa de ayuda externa, con alcance por rol:
// un Cliente solo ve los tickets de su propio email de cliente, un Admin puede
// filtrar libremente.
type FreshdeskHandler struct {
	hd      ports.Helpdesk
	clients repository.ClientRepository
}

// NewFreshdeskHandler construye el handler.
func NewFreshdeskHandler(hd ports.Helpdesk, clients repository.ClientRepository) *FreshdeskHandler {
	return &FreshdeskHandler{hd: hd, clients: clients}
}

// respondHelpdesk propaga el status y el cuerpo que devolvió la mesa externa.
func respondHelpdesk(c *fiber.Ctx, err error) error {
	var he *ports.HelpdeskError
	if errors.As(err, &he) {
		return c.Status(he.StatusCode).JSON(fiber.Map{
			"error":   "freshdesk",
			"details": he.Body,
		})
	}
	return respondError(c, err)
}

// clientEmail resuelve el email global del cliente asociado al token.
func (h *FreshdeskHandler) clientEmail(c *fiber.Ctx) (string, error) {
	clientID := GetClientID(c)
	if clientID == "" {
		return "", nil
	}
	client, err := h.clients.GetByID(clientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", nil
	}
	return client.GlobalEmail(), nil
}

// ListTickets godoc
// @Summary      Listar tickets de la mesa de ayuda según el rol
// @Description  Cliente: tickets de su email de cliente. Admin: filtros page/status/groupId/agentId o requesterEmail.
// @Tags         freshdesk
// @Security     Bearer
// @Produce      json
// @Param        page            query  int     false  "Página"
// @Param        status          query  int     false  "Estado"
// @Param        groupId         query  int     false  "Grupo"
// @Param        agentId         query  int     false  "Agente"
// @Param        requesterEmail  query  string  false  "Email del solicitante"
// @Success      200  {array}  ports.HelpdeskTicket
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /freshdesk/tickets [get]
func (h *FreshdeskHandler) ListTickets(c *fiber.Ctx) error {
	switch GetRole(c) {
	case "Cliente":
		email, err := h.clientEmail(c)
		if err != nil {
			return respondError(c, err)
		}
		if email == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin email de cliente asociado"})
		}
		out, err := h.hd.ListTickets(c.Context(), ports.TicketFilter{Page: c.QueryInt("page"), Email: email})
		if err != nil {
			return respondHelpdesk(c, err)
		}
		return c.JSON(out)
	case "Admin":
		if reqEmail := c.Query("requesterEmail"); reqEmail != "" {
			contactID, err := h.hd.FindContact(c.Context(), reqEmail)
			if err != nil {
				return respondHelpdesk(c, err)
			}
			if contactID == 0 {
				return c.JSON([]ports.HelpdeskTicket{})
			}
			out, err := h.hd.SearchTickets(c.Context(), "requester_id:"+strconv.FormatInt(contactID, 10))
			if err != nil {
				return respondHelpdesk(c, err)
			}
			return c.JSON(out)
		}
		f := ports.TicketFilter{
			Page:    c.QueryInt("page"),
			Status:  c.QueryInt("status"),
			GroupID: int64(c.QueryInt("groupId")),
			AgentID: int64(c.QueryInt("agentId")),
		}
		out, err := h.hd.ListTickets(c.Context(), f)
		if err != nil {
			return respondHelpdesk(c, err)
		}
		return c.JSON(out)
	default:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a la mesa de ayuda"})
	}
}

// CreateTicket godoc
// @Summary      Crear ticket en la mesa de ayuda (multipart)
// @Description  Reenvía adjuntos y campos cf_* como custom fields; siempre marca cf_recibido_por=Bot.
// @Tags         freshdesk
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        subject      formData  string  true   "Asunto"
// @Param        description  formData  string  true   "Descripción"
// @Param        email        formData  string  true   "Email del solicitante"
// @Success      201  {object}  ports.HelpdeskTicket
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /freshdesk/tickets [post]
func (h *FreshdeskHandler) CreateTicket(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}
	value := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}
	in := ports.CreateHelpdeskTicket{
		Subject:      value("subject"),
		Description:  value("description"),
		Email:        value("email"),
		CustomFields: map[string]any{},
	}
	if in.Subject == "" || in.Description == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "subject, description y email son requeridos"})
	}
	if raw := value("priority"); raw != "" {
		in.Priority, _ = strconv.Atoi(raw)
	}
	if raw := value("status"); raw != "" {
		in.Status, _ = strconv.Atoi(raw)
	}
	for key, vs := range form.Value {
		if len(vs) > 0 && len(key) > 3 && key[:3] == "cf_" {
			in.CustomFields[key] = vs[0]
		}
	}
	// Todo ticket entrado por este proxy queda marcado como recibido por el bot.
	in.CustomFields["cf_recibido_por"] = "Bot"

	for _, fh := range form.File["attachments"] {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "adjunto ilegible: " + fh.Filename})
		}
		defer f.Close()
		in.Attachments = append(in.Attachments, ports.HelpdeskAttachment{Name: fh.Filename, Content: f})
	}

	out, err := h.hd.CreateTicket(c.Context(), in)
	if err != nil {
		return respondHelpdesk(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTicket godoc
// @Summary      Obtener ticket con su conversación
// @Description  Un Cliente solo puede ver tickets cuyo requester coincide con su contacto.
// @Tags         freshdesk
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del ticket externo"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /freshdesk/tickets/{id} [get]
func (h *FreshdeskHandler) GetTicket(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	role := GetRole(c)
	if role != "Cliente" && role != "Admin" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a la mesa de ayuda"})
	}
	ticket, err := h.hd.GetTicket(c.Context(), int64(id))
	if err != nil {
		return respondHelpdesk(c, err)
	}
	if role == "Cliente" {
		email, err := h.clientEmail(c)
		if err != nil {
			return respondError(c, err)
		}
		contactID := int64(0)
		if email != "" {
			contactID, err = h.hd.FindContact(c.Context(), email)
			if err != nil {
				return respondHelpdesk(c, err)
			}
		}
		if contactID == 0 || ticket.RequesterID != contactID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el ticket no pertenece al cliente"})
		}
	}
	conversations, err := h.hd.ListConversations(c.Context(), int64(id))
	if err != nil {
		return respondHelpdesk(c, err)
	}
	return c.JSON(fiber.Map{
		"ticket":        ticket,
		"conversations": conversations,
	})
}
