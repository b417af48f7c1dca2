// Package views reúne as funções de visão derivada consumidas pelas telas.
//
// Todas são puras: recebem as coleções atuais (e, quando relevante, a data
// de referência), nunca mutam estado e nunca falham: coleção vazia produz
// resultado vazio e registro com data malformada é apenas excluído dos
// filtros por data.
package views

import (
	"strconv"
	"strings"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// BirthdayMode modo do filtro de aniversariantes.
type BirthdayMode string

const (
	BirthdayToday BirthdayMode = "today"
	BirthdayMonth BirthdayMode = "month"
)

// Birthdays devolve os clientes cujo aniversário ("MM-DD") casa com a
// referência: mês e dia no modo today, só o mês no modo month. A ordem de
// inserção da coleção é preservada.
func Birthdays(clients []entity.Client, month, day int, mode BirthdayMode) []entity.Client {
	out := make([]entity.Client, 0)
	for _, c := range clients {
		m, d, ok := ParseBirthDate(c.BirthDate)
		if !ok || m != month {
			continue
		}
		if mode == BirthdayToday && d != day {
			continue
		}
		out = append(out, c)
	}
	return out
}

var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ParseBirthDate interpreta "MM-DD". ok=false para valor malformado
// (mês fora de 1-12 ou dia inválido para o mês; 29/02 é aceito).
func ParseBirthDate(s string) (month, day int, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	day, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if month < 1 || month > 12 || day < 1 || day > daysInMonth[month] {
		return 0, 0, false
	}
	return month, day, true
}
