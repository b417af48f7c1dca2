package ident_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurizinlala/bike-erp/internal/domain/ident"
)

// TestNew_Prefixo verifica que o id gerado carrega o prefixo da coleção.
func TestNew_Prefixo(t *testing.T) {
	id := ident.New(ident.PrefixOrder)

	assert.True(t, strings.HasPrefix(id, "ord-"), "id de pedido deve começar com 'ord-'")
	assert.Greater(t, len(id), len("ord-"), "id deve ter sufixo além do prefixo")
}

// TestNew_SemColisao gera ids em sequência rápida e verifica que nenhum repete.
// Um sufixo baseado em relógio falharia aqui; o sufixo UUID não.
func TestNew_SemColisao(t *testing.T) {
	const n = 10_000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := ident.New(ident.PrefixProduct)
		_, dup := seen[id]
		assert.False(t, dup, "id repetido: %s", id)
		seen[id] = struct{}{}
	}
}
