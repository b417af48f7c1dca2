package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/views"
)

func revisionClients() []entity.Client {
	return []entity.Client{
		{ID: "14", Name: "Recente", DaysSinceLastPurchase: 14},
		{ID: "15", Name: "Entrando no 15d", DaysSinceLastPurchase: 15},
		{ID: "19", Name: "Saindo do 15d", DaysSinceLastPurchase: 19},
		{ID: "20", Name: "Entrando no 20d", DaysSinceLastPurchase: 20},
		{ID: "44", Name: "Saindo do 20d", DaysSinceLastPurchase: 44},
		{ID: "45", Name: "Entrando no 45d", DaysSinceLastPurchase: 45},
		{ID: "200", Name: "Muito atrasado", DaysSinceLastPurchase: 200},
		{ID: "ag", Name: "Agendado", DaysSinceLastPurchase: 50, IsScheduled: true, ScheduledDate: "2025-12-24"},
	}
}

// TestRevisionDue_FaixasExclusivas verifica os intervalos meio-abertos:
// cada contagem de dias cai em no máximo uma faixa.
func TestRevisionDue_FaixasExclusivas(t *testing.T) {
	clients := revisionClients()

	ids := func(cs []entity.Client) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"15", "19"}, ids(views.RevisionDue(clients, views.Bucket15d)))
	assert.Equal(t, []string{"20", "44"}, ids(views.RevisionDue(clients, views.Bucket20d)))
	assert.Equal(t, []string{"45", "200"}, ids(views.RevisionDue(clients, views.Bucket45d)))
}

// TestRevisionDue_AgendadoPreempta cliente agendado some das faixas de dias
// mesmo com contagem dentro delas, e aparece só na aba de agendados.
func TestRevisionDue_AgendadoPreempta(t *testing.T) {
	clients := revisionClients()

	scheduled := views.RevisionDue(clients, views.BucketScheduled)
	assert.Len(t, scheduled, 1)
	assert.Equal(t, "ag", scheduled[0].ID)

	// 50 dias cairia no 45d, mas a agenda pre-empta
	for _, c := range views.RevisionDue(clients, views.Bucket45d) {
		assert.NotEqual(t, "ag", c.ID)
	}
}

// TestRevisionDue_StatusAgendado a pre-empção vale também quando só o
// RevisionStatus marca a agenda, sem o flag booleano.
func TestRevisionDue_StatusAgendado(t *testing.T) {
	clients := []entity.Client{
		{ID: "x", DaysSinceLastPurchase: 16, RevisionStatus: entity.RevisionScheduled},
	}

	assert.Empty(t, views.RevisionDue(clients, views.Bucket15d))
	assert.Len(t, views.RevisionDue(clients, views.BucketScheduled), 1)
}

func TestRevisionBucket_Valid(t *testing.T) {
	for _, b := range views.RevisionBuckets {
		assert.True(t, b.Valid(), "balde %s", b)
	}
	assert.False(t, views.RevisionBucket("30d").Valid())
	assert.False(t, views.RevisionBucket("").Valid())
}
