package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
)

// PendencyHandler trata as requisições HTTP da tela de pendências.
type PendencyHandler struct {
	uc *usecase.PendencyUseCase
}

// NewPendencyHandler constrói o handler.
func NewPendencyHandler(uc *usecase.PendencyUseCase) *PendencyHandler {
	return &PendencyHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir pendência
// @Tags         pendencies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePendencyRequest  true  "Dados da pendência"
// @Success      201   {object}  dto.PendencyResponse
// @Router       /api/pendencies [post]
func (h *PendencyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePendencyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pendências abertas
// @Tags         pendencies
// @Produce      json
// @Success      200  {object}  dto.PendencyListResponse
// @Router       /api/pendencies [get]
func (h *PendencyHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Resolve godoc
// @Summary      Resolver pendência (remove, sem trilha de auditoria)
// @Tags         pendencies
// @Param        id  path  string  true  "Id da pendência"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pendencies/{id}/resolve [post]
func (h *PendencyHandler) Resolve(c *fiber.Ctx) error {
	if err := h.uc.Resolve(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
