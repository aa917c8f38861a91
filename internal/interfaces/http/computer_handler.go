package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
)

// ComputerHandler maneja los equipos del portal asociados a usuarios (protegido).
type ComputerHandler struct {
	uc *usecase.ComputerUseCase
}

// NewComputerHandler construye el handler.
func NewComputerHandler(uc *usecase.ComputerUseCase) *ComputerHandler {
	return &ComputerHandler{uc: uc}
}

// List godoc
// @Summary      Listar computadores (?userId= y ?zone= para filtrar)
// @Tags         computers
// @Security     Bearer
// @Produce      json
// @Param        userId  query  int     false  "ID del usuario del portal"
// @Param        zone    query  string  false  "Zona"
// @Success      200  {array}  dto.ComputerResponse
// @Router       /computers [get]
func (h *ComputerHandler) List(c *fiber.Ctx) error {
	var userID int64
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId inválido"})
		}
		userID = parsed
	}
	out, err := h.uc.List(userID, c.Query("zone"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener computador por ID
// @Tags         computers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del computador"
// @Success      200  {object}  dto.ComputerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /computers/{id} [get]
func (h *ComputerHandler) GetByID(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualización parcial por ID
// @Tags         computers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del computador"
// @Param        body  body  dto.UpdateComputerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ComputerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /computers/{id} [put]
func (h *ComputerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateComputerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
