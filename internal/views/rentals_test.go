package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/views"
)

// TestRentalStatusOn aluguel ativo com devolução vencida aparece como
// overdue; devolvido fica devolvido, qualquer que seja a data.
func TestRentalStatusOn(t *testing.T) {
	today := time.Date(2025, 12, 23, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		rental entity.Rental
		want   entity.RentalStatus
	}{
		{"ativo no prazo", entity.Rental{Status: entity.RentalActive, DueDate: "2025-12-28"}, entity.RentalActive},
		{"ativo vence hoje", entity.Rental{Status: entity.RentalActive, DueDate: "2025-12-23"}, entity.RentalActive},
		{"ativo vencido", entity.Rental{Status: entity.RentalActive, DueDate: "2025-12-20"}, entity.RentalOverdue},
		{"devolvido com data antiga", entity.Rental{Status: entity.RentalCompleted, DueDate: "2025-12-15"}, entity.RentalCompleted},
		{"data malformada mantém o gravado", entity.Rental{Status: entity.RentalActive, DueDate: "amanhã"}, entity.RentalActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, views.RentalStatusOn(tc.rental, today))
		})
	}
}

func TestOverdueRentals(t *testing.T) {
	today := time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC)
	rentals := []entity.Rental{
		{ID: "r1", Status: entity.RentalActive, DueDate: "2025-12-28"},
		{ID: "r2", Status: entity.RentalOverdue, DueDate: "2025-12-20"},
		{ID: "r3", Status: entity.RentalActive, DueDate: "2025-12-21"},
		{ID: "r4", Status: entity.RentalCompleted, DueDate: "2025-12-15"},
	}

	got := views.OverdueRentals(rentals, today)

	assert.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r3", got[1].ID)
}
