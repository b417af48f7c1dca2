package entity

import "github.com/shopspring/decimal"

// OrderType tipo do pedido.
type OrderType string

const (
	OrderVenda   OrderType = "Venda"
	OrderServico OrderType = "Serviço"
)

// Valid informa se o tipo pertence ao conjunto conhecido.
func (t OrderType) Valid() bool {
	return t == OrderVenda || t == OrderServico
}

// OrderStatus estágio do pedido no fluxo da loja.
type OrderStatus string

const (
	StatusNew     OrderStatus = "new"
	StatusPrep    OrderStatus = "prep"
	StatusPayment OrderStatus = "payment"
	StatusDone    OrderStatus = "done"
)

// OrderStatuses conjunto fixo de estágios, na ordem do fluxo.
var OrderStatuses = []OrderStatus{StatusNew, StatusPrep, StatusPayment, StatusDone}

// Valid informa se o status pertence ao conjunto fixo.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusPrep, StatusPayment, StatusDone:
		return true
	}
	return false
}

// CanTransitionTo valida a transição de estágio.
// Grafo: new -> prep -> payment -> done, com atalhos new -> payment
// (serviço sem preparação) e qualquer estágio -> done (conclusão direta).
// Retrocessos não são permitidos; done é terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() || s == next {
		return false
	}
	if next == StatusDone {
		return true
	}
	switch s {
	case StatusNew:
		return next == StatusPrep || next == StatusPayment
	case StatusPrep:
		return next == StatusPayment
	}
	return false
}

// Order representa um pedido (venda ou ordem de serviço).
// ClientID referencia o cliente cadastrado; ClientName é usado apenas como
// fallback para pedidos de clientes avulsos sem cadastro.
type Order struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"clientId,omitempty"`
	ClientName string          `json:"clientName,omitempty"`
	Type       OrderType       `json:"type"`
	Status     OrderStatus     `json:"status"`
	Value      decimal.Decimal `json:"value"`
	Date       string          `json:"date"` // ISO (YYYY-MM-DD)
}
