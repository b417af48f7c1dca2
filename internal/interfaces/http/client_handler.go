package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
)

// ClientHandler trata as requisições HTTP da tela de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
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
// @Summary      Listar clientes (busca por nome ou telefone)
// @Tags         clients
// @Produce      json
// @Param        q  query  string  false  "Termo de busca"
// @Success      200  {object}  dto.ClientListResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Query("q")))
}

// GetByID godoc
// @Summary      Obter cliente pelo id
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "Id do cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar cliente (parcial, inclui campos derivados)
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Id do cliente"
// @Param        body  body  dto.UpdateClientRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddPurchase godoc
// @Summary      Registrar compra no histórico do cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Id do cliente"
// @Param        body  body  dto.AddPurchaseRequest  true  "Compra"
// @Success      200   {object}  dto.ClientResponse
// @Router       /api/clients/{id}/purchases [post]
func (h *ClientHandler) AddPurchase(c *fiber.Ctx) error {
	var in dto.AddPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddPurchase(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddRevision godoc
// @Summary      Registrar revisão executada no histórico do cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Id do cliente"
// @Param        body  body  dto.AddRevisionRequest  true  "Revisão"
// @Success      200   {object}  dto.ClientResponse
// @Router       /api/clients/{id}/revisions [post]
func (h *ClientHandler) AddRevision(c *fiber.Ctx) error {
	var in dto.AddRevisionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddRevision(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover cliente (os pedidos dele permanecem)
// @Tags         clients
// @Param        id  path  string  true  "Id do cliente"
// @Success      204
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	h.uc.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
