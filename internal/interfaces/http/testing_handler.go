package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/siges-soporte/siges-api/internal/application/usecase"
)

// TestingHandler expone vistas de solo lectura sobre los clientes marcados
// como testing, para verificar integraciones sin tocar datos reales.
type TestingHandler struct {
	uc *usecase.TestingUseCase
}

// NewTestingHandler construye el handler.
func NewTestingHandler(uc *usecase.TestingUseCase) *TestingHandler {
	return &TestingHandler{uc: uc}
}

// Ping godoc
// @Summary      Verificación del grupo de testing
// @Tags         testing
// @Security     Bearer
// @Produce      plain
// @Success      200  {string}  string  "Testing"
// @Router       /testing [get]
func (h *TestingHandler) Ping(c *fiber.Ctx) error {
	return c.SendString("Testing")
}

// Clients godoc
// @Summary      Clientes de testing
// @Tags         testing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /testing/clients [get]
func (h *TestingHandler) Clients(c *fiber.Ctx) error {
	out, err := h.uc.Clients()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Botusers godoc
// @Summary      Botusers asociados a clientes de testing
// @Tags         testing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BotuserResponse
// @Router       /testing/botusers [get]
func (h *TestingHandler) Botusers(c *fiber.Ctx) error {
	out, err := h.uc.Botusers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Bottickets godoc
// @Summary      Bottickets de clientes de testing
// @Tags         testing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BotticketResponse
// @Router       /testing/bottickets [get]
func (h *TestingHandler) Bottickets(c *fiber.Ctx) error {
	out, err := h.uc.Bottickets()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pcs godoc
// @Summary      PCs de clientes de testing
// @Tags         testing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PcResponse
// @Router       /testing/pcs [get]
func (h *TestingHandler) Pcs(c *fiber.Ctx) error {
	out, err := h.uc.Pcs()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClientBotusers godoc
// @Summary      Clientes de testing con sus botusers
// @Tags         testing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientBotusersResponse
// @Router       /testing/client-botusers [get]
func (h *TestingHandler) ClientBotusers(c *fiber.Ctx) error {
	out, err := h.uc.ClientBotusers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
