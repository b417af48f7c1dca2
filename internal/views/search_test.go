package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/views"
)

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Cadão":        "cadao",
		"José":         "jose",
		"AÇAÍ":         "acai",
		"sem acento":   "sem acento",
		"":             "",
		"Condomínio":   "condominio",
		"Júlia Mendes": "julia mendes",
	}

	for in, want := range cases {
		assert.Equal(t, want, views.Fold(in), "entrada %q", in)
	}
}

func searchClients() []entity.Client {
	return []entity.Client{
		{ID: "1", Name: "Roberto Silva", Phone: "11999998888"},
		{ID: "2", Name: "Julia Mendes", Phone: "11988887777"},
		{ID: "3", Name: "Carlos 'Cadão' Oliveira", Phone: "11977776666"},
	}
}

// TestSearchClients_NomeSemAcento "cadao" encontra "Cadão".
func TestSearchClients_NomeSemAcento(t *testing.T) {
	got := views.SearchClients(searchClients(), "cadao")

	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestSearchClients_Telefone(t *testing.T) {
	got := views.SearchClients(searchClients(), "8888")

	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestSearchClients_TermoVazioDevolveTodos(t *testing.T) {
	clients := searchClients()

	got := views.SearchClients(clients, "   ")

	assert.Len(t, got, len(clients))
}

func TestSearchClients_SemResultado(t *testing.T) {
	got := views.SearchClients(searchClients(), "fernanda")
	assert.Empty(t, got)
}
