package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
)

// SettingsHandler trata as requisições HTTP da tela de configurações.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler constrói o handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configurações da loja
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Update godoc
// @Summary      Atualizar configurações (parcial)
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.SettingsResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.Update(in))
}

// DashboardHandler números do painel inicial.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Números do painel inicial
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.Stats())
}
