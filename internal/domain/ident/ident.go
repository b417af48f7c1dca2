// Package ident gera identificadores únicos por coleção.
//
// O prefixo mantém os ids legíveis ("p-..." produto, "ord-..." pedido);
// o sufixo UUID garante ausência de colisão mesmo sob criação em rajada,
// o que um sufixo baseado em relógio não garante.
package ident

import "github.com/google/uuid"

// Prefixos por coleção.
const (
	PrefixProduct  = "p"
	PrefixClient   = "c"
	PrefixOrder    = "ord"
	PrefixPendency = "pend"
	PrefixRental   = "r"
	PrefixHistory  = "h"
)

// New devolve um id novo no formato "<prefix>-<uuid>".
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
