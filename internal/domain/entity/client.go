package entity

import "github.com/shopspring/decimal"

// RevisionStatus estado visual do ciclo de revisão de um cliente.
type RevisionStatus string

const (
	RevisionOK        RevisionStatus = "ok"
	RevisionDue       RevisionStatus = "due"
	RevisionOverdue   RevisionStatus = "overdue"
	RevisionScheduled RevisionStatus = "scheduled"
)

// PurchaseHistory registro de uma compra passada do cliente.
type PurchaseHistory struct {
	ID          string          `json:"id"`
	ProductName string          `json:"productName"`
	Date        string          `json:"date"` // ISO (YYYY-MM-DD)
	Value       decimal.Decimal `json:"value"`
}

// RevisionHistory registro de uma revisão/serviço já executado.
type RevisionHistory struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // ISO (YYYY-MM-DD)
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Mechanic    string          `json:"mechanic,omitempty"`
}

// Client representa um cliente da loja.
// BirthDate usa o formato "MM-DD" (evento anual recorrente, sem ano).
// Os campos derivados (DaysSinceLastPurchase, RevisionStatus, ScheduledDate)
// são mantidos por quem chama update; o store nunca os recalcula.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	BirthDate string `json:"birthDate"`
	Notes     string `json:"notes,omitempty"`
	Address   string `json:"address,omitempty"`

	Purchases []PurchaseHistory `json:"purchases"`
	Revisions []RevisionHistory `json:"revisions"`

	LastPurchaseDate      string         `json:"lastPurchaseDate,omitempty"`
	DaysSinceLastPurchase int            `json:"daysSinceLastPurchase,omitempty"`
	NextRevisionDate      string         `json:"nextRevisionDate,omitempty"`
	RevisionStatus        RevisionStatus `json:"revisionStatus,omitempty"`
	IsScheduled           bool           `json:"isScheduled,omitempty"`
	ScheduledDate         string         `json:"scheduledDate,omitempty"`
}

// Scheduled indica revisão agendada; pre-empta os baldes de dias nas views.
func (c Client) Scheduled() bool {
	return c.IsScheduled || c.RevisionStatus == RevisionScheduled
}
