package dto

import (
	"github.com/shopspring/decimal"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// CreateClientRequest entrada para cadastrar um cliente.
type CreateClientRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	Notes     string `json:"notes"`
	Address   string `json:"address"`
}

// UpdateClientRequest entrada para atualização parcial de um cliente.
// Inclui os campos derivados, que são mantidos por quem chama.
type UpdateClientRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	BirthDate *string `json:"birthDate"`
	Notes     *string `json:"notes"`
	Address   *string `json:"address"`

	LastPurchaseDate      *string                `json:"lastPurchaseDate"`
	DaysSinceLastPurchase *int                   `json:"daysSinceLastPurchase"`
	NextRevisionDate      *string                `json:"nextRevisionDate"`
	RevisionStatus        *entity.RevisionStatus `json:"revisionStatus"`
	IsScheduled           *bool                  `json:"isScheduled"`
	ScheduledDate         *string                `json:"scheduledDate"`
}

// AddPurchaseRequest registra uma compra no histórico do cliente.
type AddPurchaseRequest struct {
	ProductName string          `json:"productName" validate:"required"`
	Date        string          `json:"date"`
	Value       decimal.Decimal `json:"value"`
}

// AddRevisionRequest registra uma revisão no histórico do cliente.
type AddRevisionRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description" validate:"required"`
	Cost        decimal.Decimal `json:"cost"`
	Mechanic    string          `json:"mechanic"`
}

// ClientResponse saída de um cliente.
type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	BirthDate string `json:"birthDate"`
	Notes     string `json:"notes,omitempty"`
	Address   string `json:"address,omitempty"`

	Purchases []entity.PurchaseHistory `json:"purchases"`
	Revisions []entity.RevisionHistory `json:"revisions"`

	LastPurchaseDate      string                `json:"lastPurchaseDate,omitempty"`
	DaysSinceLastPurchase int                   `json:"daysSinceLastPurchase,omitempty"`
	NextRevisionDate      string                `json:"nextRevisionDate,omitempty"`
	RevisionStatus        entity.RevisionStatus `json:"revisionStatus,omitempty"`
	IsScheduled           bool                  `json:"isScheduled,omitempty"`
	ScheduledDate         string                `json:"scheduledDate,omitempty"`

	WhatsAppLink string `json:"whatsappLink"`
}

// ClientListResponse lista de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int              `json:"total"`
}
