package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/dto"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
)

// PcHandler maneja el inventario de equipos por cliente (protegido).
type PcHandler struct {
	uc *usecase.PcUseCase
}

// NewPcHandler construye el handler.
func NewPcHandler(uc *usecase.PcUseCase) *PcHandler {
	return &PcHandler{uc: uc}
}

// List godoc
// @Summary      Listar PCs (?clientId= y ?area= para filtrar)
// @Description  El área P expande a P,N,L,B,R y la A expande a A,S,V.
// @Tags         pcs
// @Security     Bearer
// @Produce      json
// @Param        clientId  query  string  false  "Código de cliente"
// @Param        area      query  string  false  "Área"
// @Success      200  {array}  dto.PcResponse
// @Router       /pcs [get]
func (h *PcHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("clientId"), c.Query("area"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener PC por ID
// @Tags         pcs
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del PC"
// @Success      200  {object}  dto.PcResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pcs/{id} [get]
func (h *PcHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Alta/actualización por teamviewer_id
// @Description  Si ya existe un PC con ese teamviewer_id lo actualiza (200), si no lo crea (201).
// @Tags         pcs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePcRequest  true  "Datos del PC"
// @Success      200   {object}  dto.PcResponse
// @Success      201   {object}  dto.PcResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /pcs [post]
func (h *PcHandler) Upsert(c *fiber.Ctx) error {
	var in dto.CreatePcRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, created, err := h.uc.Upsert(in)
	if err != nil {
		return respondError(c, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial por ID
// @Tags         pcs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del PC"
// @Param        body  body  dto.UpdatePcRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PcResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /pcs/{id} [put]
func (h *PcHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdatePcRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
