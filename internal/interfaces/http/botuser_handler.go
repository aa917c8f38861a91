package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
	"github.com/siges-soporte/siges-api/internal/domain"
)

// BotuserHandler maneja los usuarios del bot y sus vínculos (protegido).
type BotuserHandler struct {
	uc *usecase.BotuserUseCase
}

// NewBotuserHandler construye el handler.
func NewBotuserHandler(uc *usecase.BotuserUseCase) *BotuserHandler {
	return &BotuserHandler{uc: uc}
}

// List godoc
// @Summary      Listar botusers (?phone= o ?clientId= para filtrar)
// @Tags         botusers
// @Security     Bearer
// @Produce      json
// @Param        phone     query  string  false  "Teléfono exacto"
// @Param        clientId  query  string  false  "Código de cliente"
// @Success      200  {array}  dto.BotuserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /botusers [get]
func (h *BotuserHandler) List(c *fiber.Ctx) error {
	if phone := c.Query("phone"); phone != "" {
		out, err := h.uc.GetByPhone(phone)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	if clientID := c.Query("clientId"); clientID != "" {
		out, err := h.uc.ListByClient(clientID)
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

// GetByID godoc
// @Summary      Obtener botuser por ID
// @Tags         botusers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del botuser"
// @Success      200  {object}  dto.BotuserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /botusers/{id} [get]
func (h *BotuserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Alta/actualización por teléfono
// @Description  Teléfono existente: actualiza campos y SUMA asociaciones (200). Teléfono nuevo: crea con exactamente esas asociaciones (201). Clientes inexistentes cortan con 404 listando los ids.
// @Tags         botusers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertBotuserRequest  true  "Datos del botuser"
// @Success      200   {object}  dto.BotuserResponse
// @Success      201   {object}  dto.BotuserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /botusers [post]
func (h *BotuserHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertBotuserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Phone == "" || len(in.ClientIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phone y clientIds son requeridos"})
	}
	out, created, err := h.uc.Upsert(in)
	if err != nil {
		var missing *domain.MissingClientsError
		if errors.As(err, &missing) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "CLIENTS_NOT_FOUND",
				Message: missing.Error(),
				Details: missing.IDs,
			})
		}
		return respondError(c, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial; clientIds REEMPLAZA las asociaciones
// @Tags         botusers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del botuser"
// @Param        body  body  dto.UpdateBotuserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BotuserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /botusers/{id} [put]
func (h *BotuserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateBotuserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		var missing *domain.MissingClientsError
		if errors.As(err, &missing) {
			// En el PUT un cliente inexistente es un error del cuerpo.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "CLIENTS_NOT_FOUND",
				Message: missing.Error(),
				Details: missing.IDs,
			})
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar botuser y sus asociaciones
// @Tags         botusers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del botuser"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /botusers/{id} [delete]
func (h *BotuserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Botuser eliminado"})
}
