package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
)

// OperatorHandler maneja las cuentas de operadores (protegido).
type OperatorHandler struct {
	uc *usecase.OperatorUseCase
}

// NewOperatorHandler construye el handler.
func NewOperatorHandler(uc *usecase.OperatorUseCase) *OperatorHandler {
	return &OperatorHandler{uc: uc}
}

// List godoc
// @Summary      Listar operadores (?email= para uno)
// @Tags         operators
// @Security     Bearer
// @Produce      json
// @Param        email  query  string  false  "Email del operador"
// @Success      200  {array}  dto.OperatorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /operators [get]
func (h *OperatorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear operador
// @Tags         operators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperatorRequest  true  "Credenciales del operador"
// @Success      201   {object}  dto.OperatorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /operators [post]
func (h *OperatorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOperatorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Verificar credenciales de operador (no emite token)
// @Tags         operators
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OperatorLoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.OperatorLoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *OperatorHandler) Login(c *fiber.Ctx) error {
	var in dto.OperatorLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
