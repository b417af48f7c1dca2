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

func newRentalUC(t *testing.T) *usecase.RentalUseCase {
	t.Helper()
	s := store.New(store.Options{Snapshots: localstore.NewMemory()})
	return usecase.NewRentalUseCase(s)
}

func TestRentalCreate(t *testing.T) {
	uc := newRentalUC(t)

	got, err := uc.Create(dto.CreateRentalRequest{
		ClientName: "Lucas Farias",
		Bike:       "E-Bike City #07",
		DueDate:    "2099-01-15",
		Price:      decimal.NewFromInt(160),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "active", got.Status, "aluguel nasce ativo")
}

func TestRentalCreate_Invalido(t *testing.T) {
	uc := newRentalUC(t)

	_, err := uc.Create(dto.CreateRentalRequest{Bike: "X", DueDate: "2099-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome obrigatório")

	_, err = uc.Create(dto.CreateRentalRequest{ClientName: "X", Bike: "Y", DueDate: "15/01/2099"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "data fora do formato ISO")
}

// TestRentalList_StatusEfetivo aluguel ativo com devolução vencida aparece
// como overdue na listagem, sem mutar o registro.
func TestRentalList_StatusEfetivo(t *testing.T) {
	uc := newRentalUC(t)

	// r1 do dataset semente está ativo com devolução em 2025-12-28, já no
	// passado para qualquer data de execução destes testes
	list := uc.List()

	byID := make(map[string]string, list.Total)
	for _, r := range list.Items {
		byID[r.ID] = r.Status
	}
	assert.Equal(t, "overdue", byID["r1"])
	assert.Equal(t, "overdue", byID["r2"])
	assert.Equal(t, "completed", byID["r3"])
}

func TestRentalComplete(t *testing.T) {
	uc := newRentalUC(t)

	got, err := uc.Complete("r2")
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)

	_, err = uc.Complete("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRentalUpdate_StatusInvalido(t *testing.T) {
	uc := newRentalUC(t)

	bad := "paused"
	_, err := uc.Update("r1", dto.UpdateRentalRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
