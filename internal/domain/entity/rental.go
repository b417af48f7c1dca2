package entity

import "github.com/shopspring/decimal"

// RentalStatus situação de um aluguel de bike.
type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalOverdue   RentalStatus = "overdue"
	RentalCompleted RentalStatus = "completed"
)

// Rental representa o aluguel de uma bike por período.
type Rental struct {
	ID         string          `json:"id"`
	ClientName string          `json:"clientName"`
	Bike       string          `json:"bike"`
	Status     RentalStatus    `json:"status"`
	DueDate    string          `json:"dueDate"` // ISO (YYYY-MM-DD)
	Price      decimal.Decimal `json:"price"`
}
