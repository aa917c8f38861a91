package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
)

// TicketHandler maneja los tickets del portal (protegido).
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// List godoc
// @Summary      Listar tickets (?id= para uno, ?userId= para filtrar)
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id      query  int  false  "ID del ticket"
// @Param        userId  query  int  false  "ID del usuario"
// @Success      200  {array}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
		}
		out, err := h.uc.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	var userID int64
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId inválido"})
		}
		userID = parsed
	}
	out, err := h.uc.List(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ticket
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Datos del ticket"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BotticketHandler maneja los tickets generados por el bot (protegido).
type BotticketHandler struct {
	uc *usecase.BotticketUseCase
}

// NewBotticketHandler construye el handler.
func NewBotticketHandler(uc *usecase.BotticketUseCase) *BotticketHandler {
	return &BotticketHandler{uc: uc}
}

// List godoc
// @Summary      Listar bottickets (?id= para uno, ?clientId= para filtrar)
// @Tags         bottickets
// @Security     Bearer
// @Produce      json
// @Param        id        query  int     false  "ID del botticket"
// @Param        clientId  query  string  false  "Código de cliente"
// @Success      200  {array}  dto.BotticketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /bottickets [get]
func (h *BotticketHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
		}
		out, err := h.uc.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.Query("clientId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear botticket
// @Tags         bottickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBotticketRequest  true  "Datos del botticket"
// @Success      201   {object}  dto.BotticketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /bottickets [post]
func (h *BotticketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBotticketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// OpticketHandler maneja los tickets de operadores (protegido).
type OpticketHandler struct {
	uc *usecase.OpticketUseCase
}

// NewOpticketHandler construye el handler.
func NewOpticketHandler(uc *usecase.OpticketUseCase) *OpticketHandler {
	return &OpticketHandler{uc: uc}
}

// List godoc
// @Summary      Listar optickets
// @Tags         optickets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OpticketResponse
// @Router       /optickets [get]
func (h *OpticketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear opticket
// @Tags         optickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOpticketRequest  true  "Datos del opticket"
// @Success      201   {object}  dto.OpticketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /optickets [post]
func (h *OpticketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOpticketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Detail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Faltan parametros"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar opticket por ?id=
// @Tags         optickets
// @Security     Bearer
// @Produce      json
// @Param        id   query  int  true  "ID del opticket"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /optickets [delete]
func (h *OpticketHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Opticket eliminado"})
}
