package views

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// DashboardStats números do painel inicial.
type DashboardStats struct {
	SalesToday     int
	FinancialToday decimal.Decimal
	BirthdaysToday int
	OpenPendencies int
}

// Dashboard calcula os números do painel para a data de referência.
// O caller computa "today" uma única vez por renderização e repassa, para
// que contadores e listas da mesma tela nunca discordem.
func Dashboard(clients []entity.Client, orders []entity.Order, pendencies []entity.Pendency, today time.Time) DashboardStats {
	date := today.Format("2006-01-02")
	stats := DashboardStats{
		FinancialToday: decimal.Zero,
		OpenPendencies: len(pendencies),
	}
	for _, o := range orders {
		if o.Date != date {
			continue
		}
		if o.Type == entity.OrderVenda {
			stats.SalesToday++
		}
		stats.FinancialToday = stats.FinancialToday.Add(o.Value)
	}
	stats.BirthdaysToday = len(Birthdays(clients, int(today.Month()), today.Day(), BirthdayToday))
	return stats
}
