package views

import (
	"time"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// RentalStatusOn devolve o status efetivo do aluguel na data de referência:
// um aluguel ativo com devolução vencida aparece como overdue. Data de
// devolução malformada mantém o status gravado.
func RentalStatusOn(r entity.Rental, today time.Time) entity.RentalStatus {
	if r.Status != entity.RentalActive {
		return r.Status
	}
	due, err := time.Parse("2006-01-02", r.DueDate)
	if err != nil {
		return r.Status
	}
	if due.Before(today.Truncate(24 * time.Hour)) {
		return entity.RentalOverdue
	}
	return r.Status
}

// OverdueRentals filtra os aluguéis vencidos na data de referência.
func OverdueRentals(rentals []entity.Rental, today time.Time) []entity.Rental {
	out := make([]entity.Rental, 0)
	for _, r := range rentals {
		if RentalStatusOn(r, today) == entity.RentalOverdue {
			out = append(out, r)
		}
	}
	return out
}
