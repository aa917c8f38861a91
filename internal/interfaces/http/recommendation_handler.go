package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
)

// RecommendationHandler maneja las recomendaciones mostradas en el portal (protegido).
type RecommendationHandler struct {
	uc *usecase.RecommendationUseCase
}

// NewRecommendationHandler construye el handler.
func NewRecommendationHandler(uc *usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// List godoc
// @Summary      Listar recomendaciones
// @Tags         recommendations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RecommendationResponse
// @Router       /recommendations [get]
func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear recomendación
// @Tags         recommendations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecommendationRequest  true  "Datos de la recomendación"
// @Success      201   {object}  dto.RecommendationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /recommendations [post]
func (h *RecommendationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecommendationRequest
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
// @Summary      Actualización parcial de una recomendación
// @Tags         recommendations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la recomendación"
// @Param        body  body  dto.UpdateRecommendationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RecommendationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /recommendations/{id} [put]
func (h *RecommendationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateRecommendationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar recomendación
// @Tags         recommendations
// @Security     Bearer
// @Param        id  path  int  true  "ID de la recomendación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /recommendations/{id} [delete]
func (h *RecommendationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
