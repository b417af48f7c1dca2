package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/infrastructure/localstore"
	"github.com/yurizinlala/bike-erp/internal/store"
)

func newRevisionUC(t *testing.T) (*usecase.RevisionUseCase, *store.Store) {
	t.Helper()
	s := store.New(store.Options{Snapshots: localstore.NewMemory()})
	return usecase.NewRevisionUseCase(s), s
}

// TestRevisionList_Baldes o dataset semente particiona: Roberto (15 dias)
// no 15d, Amanda (20 dias) no 20d, Carlos (45 dias) no 45d e Julia na agenda.
func TestRevisionList_Baldes(t *testing.T) {
	uc, _ := newRevisionUC(t)

	cases := map[string]string{
		"15d":       "Roberto Silva",
		"20d":       "Amanda Costa",
		"45d":       "Carlos 'Cadão' Oliveira",
		"scheduled": "Julia Mendes",
	}

	for bucket, want := range cases {
		got, err := uc.List(bucket)
		require.NoError(t, err, "balde %s", bucket)
		require.Equal(t, 1, got.Total, "balde %s", bucket)
		assert.Equal(t, want, got.Items[0].Name, "balde %s", bucket)
	}
}

func TestRevisionList_BaldeInvalido(t *testing.T) {
	uc, _ := newRevisionUC(t)

	_, err := uc.List("30d")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestRevisionNotify_ComposicaoDosLinks os links usam o template de revisão
// com o nome do cliente no lugar do marcador.
func TestRevisionNotify_ComposicaoDosLinks(t *testing.T) {
	uc, _ := newRevisionUC(t)

	got, err := uc.Notify("15d", dto.NotifyRequest{})

	require.NoError(t, err)
	require.Equal(t, 1, got.Total)
	link := got.Links[0]
	assert.Equal(t, "1", link.ClientID)
	assert.Equal(t, "Roberto Silva", link.Name)
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/5511999998888?text="))
	assert.Contains(t, link.URL, "Roberto+Silva", "nome substitui o marcador no texto")
}

// TestRevisionNotify_SelecaoFiltra seleção não vazia restringe o disparo
// aos ids pedidos.
func TestRevisionNotify_SelecaoFiltra(t *testing.T) {
	uc, _ := newRevisionUC(t)

	got, err := uc.Notify("15d", dto.NotifyRequest{ClientIDs: []string{"outro"}})

	require.NoError(t, err)
	assert.Zero(t, got.Total)
}

// TestRevisionNotify_TemplateDasConfiguracoes trocar o template nas
// configurações muda o texto do próximo disparo.
func TestRevisionNotify_TemplateDasConfiguracoes(t *testing.T) {
	uc, s := newRevisionUC(t)

	tpl := "Oi {{nome}}, hora da revisão"
	s.UpdateSettings(store.SettingsPatch{TemplateRevision15d: &tpl})

	got, err := uc.Notify("15d", dto.NotifyRequest{})

	require.NoError(t, err)
	require.Equal(t, 1, got.Total)
	assert.Contains(t, got.Links[0].URL, "hora+da+revis%C3%A3o")
}
