package views

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// foldTransformer decompõe e remove as marcas de acento (NFD -> sem Mn -> NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza um termo de busca: minúsculas e sem acentos
// ("Cadão" -> "cadao").
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// SearchClients filtra clientes por nome (sem distinção de caixa ou
// acentos) ou por trecho do telefone. Termo vazio devolve todos.
func SearchClients(clients []entity.Client, term string) []entity.Client {
	term = strings.TrimSpace(term)
	if term == "" {
		out := make([]entity.Client, len(clients))
		copy(out, clients)
		return out
	}
	q := Fold(term)
	out := make([]entity.Client, 0)
	for _, c := range clients {
		if strings.Contains(Fold(c.Name), q) || strings.Contains(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out
}
