package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/infrastructure/localstore"
	"github.com/yurizinlala/bike-erp/internal/store"
)

func newProductUC(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	s := store.New(store.Options{Snapshots: localstore.NewMemory()})
	return usecase.NewProductUseCase(s)
}

func TestProductCreate(t *testing.T) {
	uc := newProductUC(t)

	got, err := uc.Create(dto.CreateProductRequest{
		Name:     "Corrente 9v",
		Category: "Peça",
		Price:    decimal.NewFromInt(95),
		Quantity: 6,
		MinStock: 2,
		Location: "Gaveta 1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.LowStock)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := newProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome obrigatório")

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "preço negativo")

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade negativa")
}

// TestProductList_Filtros o filtro combinado da tela de estoque.
func TestProductList_Filtros(t *testing.T) {
	uc := newProductUC(t)

	all := uc.List("", "", false)
	assert.Equal(t, 9, all.Total)

	bikes := uc.List("", "Bicicleta", false)
	assert.Equal(t, 4, bikes.Total)

	// busca sem acentos acha "Acessório" pelo nome do produto
	byName := uc.List("bateria", "", false)
	require.Equal(t, 1, byName.Total)
	assert.Equal(t, "Bateria Extra 48V", byName.Items[0].Name)

	low := uc.List("", "", true)
	assert.Equal(t, 4, low.Total)
}

// TestProductLowStock flag calculada na resposta acompanha a fronteira
// quantity <= minStock.
func TestProductLowStock(t *testing.T) {
	uc := newProductUC(t)

	got := uc.LowStock()

	require.Equal(t, 4, got.Total)
	for _, item := range got.Items {
		assert.True(t, item.LowStock, "produto %s", item.Name)
	}
}

func TestProductUpdate(t *testing.T) {
	uc := newProductUC(t)

	qty := 10
	got, err := uc.Update("p_tire", dto.UpdateProductRequest{Quantity: &qty})

	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
	assert.False(t, got.LowStock, "10 unidades saem do alerta")
	assert.Equal(t, "Pneu Aro 26", got.Name, "campos fora do patch ficam intactos")
}

func TestProductUpdate_Invalido(t *testing.T) {
	uc := newProductUC(t)

	_, err := uc.Update("fantasma", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	empty := ""
	_, err = uc.Update("p1", dto.UpdateProductRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	neg := decimal.NewFromInt(-10)
	_, err = uc.Update("p1", dto.UpdateProductRequest{Price: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetByID_Ausente(t *testing.T) {
	uc := newProductUC(t)

	_, err := uc.GetByID("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
