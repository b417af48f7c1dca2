package dto

import "github.com/shopspring/decimal"

// CreateOrderRequest entrada para abrir um pedido.
//
// Venda: ProductIDs compõe o carrinho e o valor final é a soma dos preços
// (Value explícito tem precedência, para vendas avulsas). Serviço: abre em
// preparação com valor zero, precificado depois.
// ClientName só é usado quando o cliente não tem cadastro (ClientID vazio).
type CreateOrderRequest struct {
	ClientID   string           `json:"clientId"`
	ClientName string           `json:"clientName"`
	Type       string           `json:"type" validate:"required"`
	ProductIDs []string         `json:"productIds"`
	Value      *decimal.Decimal `json:"value"`
	Date       string           `json:"date"`
}

// UpdateOrderStatusRequest troca o estágio do pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse saída de um pedido. ClientName é resolvido pelo cadastro
// atual do cliente quando há ClientID.
type OrderResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"clientId,omitempty"`
	ClientName string          `json:"clientName"`
	Type       string          `json:"type"`
	Status     string          `json:"status"`
	Value      decimal.Decimal `json:"value"`
	Date       string          `json:"date"`
}

// OrderListResponse lista de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// KanbanResponse pedidos agrupados pelos quatro estágios do fluxo.
type KanbanResponse struct {
	New     []OrderResponse `json:"new"`
	Prep    []OrderResponse `json:"prep"`
	Payment []OrderResponse `json:"payment"`
	Done    []OrderResponse `json:"done"`
}
