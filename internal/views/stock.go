package views

import (
	"strings"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// LowStock devolve os produtos com estoque no limite ou abaixo dele
// (quantity <= minStock), na ordem de inserção.
func LowStock(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

// OutOfStock devolve os produtos com estoque zerado.
func OutOfStock(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if p.OutOfStock() {
			out = append(out, p)
		}
	}
	return out
}

// FilterProducts aplica o filtro combinado da tela de estoque: busca por
// nome (sem distinção de caixa ou acentos), categoria exata e, se pedido,
// somente itens com estoque baixo.
func FilterProducts(products []entity.Product, query, category string, lowOnly bool) []entity.Product {
	q := Fold(strings.TrimSpace(query))
	out := make([]entity.Product, 0)
	for _, p := range products {
		if q != "" && !strings.Contains(Fold(p.Name), q) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if lowOnly && !p.LowStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}
