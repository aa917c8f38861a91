package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
	"github.com/siges-soporte/siges-api/internal/domain"
)

// ClientHandler maneja los clientes (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes (o uno con ?id=)
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   query  string  false  "Código del cliente"
// @Success      200  {array}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		out, err := h.uc.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente (código generado si no viene id)
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "Cliente ya existente"})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente (id en el body)
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateClientRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /clients [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id es requerido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetEmail godoc
// @Summary      Email global de un cliente
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        clientId  path  string  true  "Código del cliente"
// @Success      200  {object}  dto.ClientEmailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{clientId}/email [get]
func (h *ClientHandler) GetEmail(c *fiber.Ctx) error {
	out, err := h.uc.GetEmail(c.Params("clientId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
