package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// TestOrderStatus_CanTransitionTo percorre a tabela completa de transições.
// Fluxo: new -> prep -> payment -> done, atalho new -> payment e conclusão
// direta de qualquer estágio; retrocessos proibidos e done terminal.
func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to entity.OrderStatus
		want     bool
	}{
		{entity.StatusNew, entity.StatusPrep, true},
		{entity.StatusNew, entity.StatusPayment, true},
		{entity.StatusNew, entity.StatusDone, true},
		{entity.StatusPrep, entity.StatusPayment, true},
		{entity.StatusPrep, entity.StatusDone, true},
		{entity.StatusPayment, entity.StatusDone, true},

		// retrocessos
		{entity.StatusPrep, entity.StatusNew, false},
		{entity.StatusPayment, entity.StatusNew, false},
		{entity.StatusPayment, entity.StatusPrep, false},

		// done é terminal
		{entity.StatusDone, entity.StatusNew, false},
		{entity.StatusDone, entity.StatusPrep, false},
		{entity.StatusDone, entity.StatusPayment, false},

		// auto-transições
		{entity.StatusNew, entity.StatusNew, false},
		{entity.StatusDone, entity.StatusDone, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}
}

// TestOrderStatus_CanTransitionTo_Desconhecido rejeita estágios fora do conjunto.
func TestOrderStatus_CanTransitionTo_Desconhecido(t *testing.T) {
	assert.False(t, entity.OrderStatus("shipped").CanTransitionTo(entity.StatusDone))
	assert.False(t, entity.StatusNew.CanTransitionTo(entity.OrderStatus("shipped")))
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range entity.OrderStatuses {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, entity.OrderStatus("").Valid())
	assert.False(t, entity.OrderStatus("cancelled").Valid())
}

func TestOrderType_Valid(t *testing.T) {
	assert.True(t, entity.OrderVenda.Valid())
	assert.True(t, entity.OrderServico.Valid())
	assert.False(t, entity.OrderType("Troca").Valid())
}
