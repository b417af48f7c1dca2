package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
)

// RentalHandler trata as requisições HTTP da tela de aluguel.
type RentalHandler struct {
	uc *usecase.RentalUseCase
}

// NewRentalHandler constrói o handler.
func NewRentalHandler(uc *usecase.RentalUseCase) *RentalHandler {
	return &RentalHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir aluguel
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRentalRequest  true  "Dados do aluguel"
// @Success      201   {object}  dto.RentalResponse
// @Router       /api/rentals [post]
func (h *RentalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRentalRequest
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
// @Summary      Listar aluguéis (status efetivo pela data corrente)
// @Tags         rentals
// @Produce      json
// @Success      200  {object}  dto.RentalListResponse
// @Router       /api/rentals [get]
func (h *RentalHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Update godoc
// @Summary      Atualizar aluguel (parcial)
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Id do aluguel"
// @Param        body  body  dto.UpdateRentalRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.RentalResponse
// @Router       /api/rentals/{id} [put]
func (h *RentalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRentalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Encerrar aluguel (devolução da bike)
// @Tags         rentals
// @Produce      json
// @Param        id  path  string  true  "Id do aluguel"
// @Success      200  {object}  dto.RentalResponse
// @Router       /api/rentals/{id}/complete [post]
func (h *RentalHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover aluguel
// @Tags         rentals
// @Param        id  path  string  true  "Id do aluguel"
// @Success      204
// @Router       /api/rentals/{id} [delete]
func (h *RentalHandler) Delete(c *fiber.Ctx) error {
	h.uc.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
