package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
)

// WebuserHandler maneja las credenciales web ligadas a usuarios del portal (protegido).
type WebuserHandler struct {
	uc *usecase.WebuserUseCase
}

// NewWebuserHandler construye el handler.
func NewWebuserHandler(uc *usecase.WebuserUseCase) *WebuserHandler {
	return &WebuserHandler{uc: uc}
}

// List godoc
// @Summary      Listar webusers (?userId= para filtrar, ?email=&reset=true para avisar el reset)
// @Tags         webusers
// @Security     Bearer
// @Produce      json
// @Param        userId  query  int     false  "ID del usuario del portal"
// @Param        email   query  string  false  "Email del webuser"
// @Param        reset   query  bool    false  "Enviar aviso de restablecimiento"
// @Success      200  {array}  dto.WebuserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /webusers [get]
func (h *WebuserHandler) List(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" && c.QueryBool("reset") {
		out, err := h.uc.Reset(email)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	if raw := c.Query("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId inválido"})
		}
		out, err := h.uc.ListByUser(userID)
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
// @Summary      Crear webuser y avisar el alta al default_email
// @Tags         webusers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWebuserRequest  true  "Datos del webuser"
// @Success      201   {object}  dto.CreateWebuserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /webusers [post]
func (h *WebuserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWebuserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar webuser por email (rol o contraseña)
// @Description  Con role cambia el rol y reactiva la cuenta; sin role y con password la rehashea.
// @Tags         webusers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateWebuserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WebuserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /webusers [put]
func (h *WebuserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWebuserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
