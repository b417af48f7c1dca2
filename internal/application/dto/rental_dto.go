package dto

import "github.com/shopspring/decimal"

// CreateRentalRequest entrada para abrir um aluguel.
type CreateRentalRequest struct {
	ClientName string          `json:"clientName" validate:"required"`
	Bike       string          `json:"bike" validate:"required"`
	DueDate    string          `json:"dueDate" validate:"required"`
	Price      decimal.Decimal `json:"price"`
}

// UpdateRentalRequest entrada para atualização parcial de um aluguel.
type UpdateRentalRequest struct {
	ClientName *string          `json:"clientName"`
	Bike       *string          `json:"bike"`
	Status     *string          `json:"status"`
	DueDate    *string          `json:"dueDate"`
	Price      *decimal.Decimal `json:"price"`
}

// RentalResponse saída de um aluguel. Status reflete o vencimento na data
// de referência da consulta (ativo vencido aparece como overdue).
type RentalResponse struct {
	ID         string          `json:"id"`
	ClientName string          `json:"clientName"`
	Bike       string          `json:"bike"`
	Status     string          `json:"status"`
	DueDate    string          `json:"dueDate"`
	Price      decimal.Decimal `json:"price"`
}

// RentalListResponse lista de aluguéis.
type RentalListResponse struct {
	Items []RentalResponse `json:"items"`
	Total int              `json:"total"`
}
