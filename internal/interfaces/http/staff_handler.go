package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
)

// StaffHandler expone el personal de soporte (protegido).
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// List godoc
// @Summary      Listar staff (?userId= para filtrar)
// @Tags         staffs
// @Security     Bearer
// @Produce      json
// @Param        userId  query  int  false  "ID del usuario del portal"
// @Success      200  {array}  dto.StaffResponse
// @Router       /staffs [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
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
