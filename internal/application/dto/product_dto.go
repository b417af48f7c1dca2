package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para cadastrar um produto.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	MinStock int             `json:"minStock"`
	Location string          `json:"location"`
}

// UpdateProductRequest entrada para atualização parcial de um produto.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
	MinStock *int             `json:"minStock"`
	Location *string          `json:"location"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	MinStock   int             `json:"minStock"`
	Location   string          `json:"location"`
	LowStock   bool            `json:"lowStock"`
	OutOfStock bool            `json:"outOfStock"`
}

// ProductListResponse lista de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
