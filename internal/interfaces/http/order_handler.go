package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
)

// OrderHandler trata as requisições HTTP das telas de pedidos.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir pedido (venda com carrinho ou ordem de serviço)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Dados do pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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
// @Summary      Listar pedidos
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Kanban godoc
// @Summary      Pedidos agrupados pelos estágios do fluxo
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.KanbanResponse
// @Router       /api/orders/kanban [get]
func (h *OrderHandler) Kanban(c *fiber.Ctx) error {
	return c.JSON(h.uc.Kanban())
}

// GetByID godoc
// @Summary      Obter pedido pelo id
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "Id do pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Mover pedido no fluxo
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Id do pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Novo estágio"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse  "Transição inválida"
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover pedido
// @Tags         orders
// @Param        id  path  string  true  "Id do pedido"
// @Success      204
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	h.uc.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
