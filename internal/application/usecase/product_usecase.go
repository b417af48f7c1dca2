package usecase

import (
	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/internal/views"
)

// ProductUseCase casos de uso da tela de estoque.
type ProductUseCase struct {
	store *store.Store
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(s *store.Store) *ProductUseCase {
	return &ProductUseCase{store: s}
}

// Create cadastra um produto. Valida presença de nome e não-negatividade de
// preço, quantidade e estoque mínimo; o store aceita o que chegar até ele.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Quantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	created := uc.store.AddProduct(entity.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Quantity: in.Quantity,
		MinStock: in.MinStock,
		Location: in.Location,
	})
	return toProductResponse(created), nil
}

// GetByID obtém um produto pelo id.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, ok := uc.store.ProductByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// List aplica o filtro combinado da tela de estoque (busca, categoria,
// somente estoque baixo).
func (uc *ProductUseCase) List(query, category string, lowOnly bool) *dto.ProductListResponse {
	filtered := views.FilterProducts(uc.store.Products(), query, category, lowOnly)
	return toProductList(filtered)
}

// LowStock devolve os produtos com estoque no limite ou abaixo dele.
func (uc *ProductUseCase) LowStock() *dto.ProductListResponse {
	return toProductList(views.LowStock(uc.store.Products()))
}

// Update atualiza parcialmente um produto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if _, ok := uc.store.ProductByID(id); !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if (in.Quantity != nil && *in.Quantity < 0) || (in.MinStock != nil && *in.MinStock < 0) {
		return nil, domain.ErrInvalidInput
	}
	uc.store.UpdateProduct(id, store.ProductPatch{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Quantity: in.Quantity,
		MinStock: in.MinStock,
		Location: in.Location,
	})
	p, _ := uc.store.ProductByID(id)
	return toProductResponse(p), nil
}

// Delete remove um produto. Id ausente não é erro: a remoção é idempotente.
func (uc *ProductUseCase) Delete(id string) {
	uc.store.DeleteProduct(id)
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		Quantity:   p.Quantity,
		MinStock:   p.MinStock,
		Location:   p.Location,
		LowStock:   p.LowStock(),
		OutOfStock: p.OutOfStock(),
	}
}

func toProductList(list []entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}
