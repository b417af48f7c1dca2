package views

import (
	"github.com/shopspring/decimal"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// CartTotal soma os preços de uma seleção transitória de produtos.
// A seleção existe só durante a composição de uma venda e é descartada ao
// finalizar (vira o Value de um único pedido).
func CartTotal(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}
	return total
}
