package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
)

// ProductHandler trata as requisições HTTP da tela de estoque.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar produto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Listar produtos (busca, categoria, só estoque baixo)
// @Tags         products
// @Produce      json
// @Param        q         query  string  false  "Busca por nome"
// @Param        category  query  string  false  "Categoria exata"
// @Param        low       query  bool    false  "Somente estoque baixo"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Query("q"), c.Query("category"), c.QueryBool("low")))
}

// LowStock godoc
// @Summary      Produtos com estoque no limite ou abaixo
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.uc.LowStock())
}

// GetByID godoc
// @Summary      Obter produto pelo id
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Id do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar produto (parcial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Id do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover produto
// @Tags         products
// @Param        id  path  string  true  "Id do produto"
// @Success      204
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	h.uc.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
