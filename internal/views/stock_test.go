package views_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/internal/views"
)

// TestLowStock_Limite fixa a fronteira do alerta: igual ao mínimo alerta,
// um acima não.
func TestLowStock_Limite(t *testing.T) {
	products := []entity.Product{
		{ID: "abaixo", Quantity: 2, MinStock: 3},
		{ID: "no-limite", Quantity: 3, MinStock: 3},
		{ID: "acima", Quantity: 4, MinStock: 3},
	}

	got := views.LowStock(products)

	assert.Len(t, got, 2)
	assert.Equal(t, "abaixo", got[0].ID)
	assert.Equal(t, "no-limite", got[1].ID)
}

// TestLowStock_DatasetSemente fixa o resultado sobre o dataset inicial da
// loja: três produtos em alerta, na ordem do cadastro.
func TestLowStock_DatasetSemente(t *testing.T) {
	snap := store.Seed()
	got := views.LowStock(snap.Products)

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"E-Bike City", "E-Bike Cargo", "Bateria Extra 48V", "Pneu Aro 26"}, names)
}

func TestOutOfStock(t *testing.T) {
	products := []entity.Product{
		{ID: "zerado", Quantity: 0, MinStock: 1},
		{ID: "baixo", Quantity: 1, MinStock: 2},
	}

	got := views.OutOfStock(products)

	assert.Len(t, got, 1)
	assert.Equal(t, "zerado", got[0].ID)
}

func TestFilterProducts_Combinado(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Name: "E-Bike City", Category: entity.CategoryBicicleta, Quantity: 1, MinStock: 2, Price: decimal.NewFromInt(6200)},
		{ID: "2", Name: "E-Bike Sport", Category: entity.CategoryBicicleta, Quantity: 5, MinStock: 2, Price: decimal.NewFromInt(8500)},
		{ID: "3", Name: "Pneu Aro 26", Category: entity.CategoryPeca, Quantity: 2, MinStock: 4, Price: decimal.NewFromInt(120)},
	}

	// busca por nome, sem distinção de caixa
	byName := views.FilterProducts(products, "e-bike", "", false)
	assert.Len(t, byName, 2)

	// categoria exata
	byCategory := views.FilterProducts(products, "", entity.CategoryPeca, false)
	assert.Len(t, byCategory, 1)
	assert.Equal(t, "3", byCategory[0].ID)

	// só estoque baixo
	lowOnly := views.FilterProducts(products, "", "", true)
	assert.Len(t, lowOnly, 2)

	// combinação: nome + estoque baixo
	combined := views.FilterProducts(products, "e-bike", "", true)
	assert.Len(t, combined, 1)
	assert.Equal(t, "1", combined[0].ID)
}
