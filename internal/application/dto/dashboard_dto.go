package dto

import "github.com/shopspring/decimal"

// DashboardResponse números do painel inicial, calculados para uma única
// data de referência.
type DashboardResponse struct {
	Date           string          `json:"date"`
	SalesToday     int             `json:"salesToday"`
	FinancialToday decimal.Decimal `json:"financialToday"`
	BirthdaysToday int             `json:"birthdaysToday"`
	OpenPendencies int             `json:"openPendencies"`
	LowStockCount  int             `json:"lowStockCount"`
}
