package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/internal/views"
)

// OrderUseCase casos de uso das telas de pedidos (lista, kanban, novos).
type OrderUseCase struct {
	store *store.Store
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(s *store.Store) *OrderUseCase {
	return &OrderUseCase{store: s}
}

// Create abre um pedido. Venda nasce em "new" com o valor do carrinho
// (soma dos preços dos produtos selecionados); serviço nasce em "prep" com
// valor zero, precificado ao longo da execução.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	orderType := entity.OrderType(in.Type)
	if !orderType.Valid() {
		return nil, domain.ErrInvalidInput
	}

	clientName := in.ClientName
	if in.ClientID != "" {
		c, ok := uc.store.ClientByID(in.ClientID)
		if !ok {
			return nil, domain.ErrNotFound
		}
		clientName = c.Name
	}
	if in.ClientID == "" && clientName == "" {
		return nil, domain.ErrInvalidInput
	}

	status := entity.StatusNew
	value := decimal.Zero
	switch orderType {
	case entity.OrderVenda:
		if len(in.ProductIDs) > 0 {
			cart := make([]entity.Product, 0, len(in.ProductIDs))
			for _, pid := range in.ProductIDs {
				p, ok := uc.store.ProductByID(pid)
				if !ok {
					return nil, domain.ErrNotFound
				}
				cart = append(cart, p)
			}
			value = views.CartTotal(cart)
		}
		if in.Value != nil {
			value = *in.Value
		}
		if value.IsZero() && len(in.ProductIDs) == 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.OrderServico:
		status = entity.StatusPrep
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	created := uc.store.AddOrder(entity.Order{
		ClientID:   in.ClientID,
		ClientName: clientName,
		Type:       orderType,
		Status:     status,
		Value:      value,
		Date:       date,
	})
	return uc.toOrderResponse(created), nil
}

// GetByID obtém um pedido pelo id.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	o, ok := uc.store.OrderByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return uc.toOrderResponse(o), nil
}

// List devolve todos os pedidos na ordem de inserção.
func (uc *OrderUseCase) List() *dto.OrderListResponse {
	orders := uc.store.Orders()
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *uc.toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}
}

// Kanban agrupa os pedidos pelos quatro estágios do fluxo.
func (uc *OrderUseCase) Kanban() *dto.KanbanResponse {
	board := views.Kanban(uc.store.Orders())
	return &dto.KanbanResponse{
		New:     uc.toOrderResponses(board.New),
		Prep:    uc.toOrderResponses(board.Prep),
		Payment: uc.toOrderResponses(board.Payment),
		Done:    uc.toOrderResponses(board.Done),
	}
}

// UpdateStatus move o pedido no fluxo. A transição é validada aqui contra o
// grafo do domínio (o store em si aceita qualquer estágio): avanços e a
// conclusão direta passam, retrocessos são rejeitados com ErrConflict.
func (uc *OrderUseCase) UpdateStatus(id string, status string) (*dto.OrderResponse, error) {
	next := entity.OrderStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidInput
	}
	o, ok := uc.store.OrderByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, domain.ErrConflict
	}
	uc.store.UpdateOrderStatus(id, next)
	o, _ = uc.store.OrderByID(id)
	return uc.toOrderResponse(o), nil
}

// Delete remove um pedido (não há status de cancelamento à parte).
func (uc *OrderUseCase) Delete(id string) {
	uc.store.DeleteOrder(id)
}

// toOrderResponse resolve o nome pelo cadastro atual do cliente quando há
// ClientID, evitando que a cópia desatualize após um rename.
func (uc *OrderUseCase) toOrderResponse(o entity.Order) *dto.OrderResponse {
	name := o.ClientName
	if o.ClientID != "" {
		if c, ok := uc.store.ClientByID(o.ClientID); ok {
			name = c.Name
		}
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		ClientID:   o.ClientID,
		ClientName: name,
		Type:       string(o.Type),
		Status:     string(o.Status),
		Value:      o.Value,
		Date:       o.Date,
	}
}

func (uc *OrderUseCase) toOrderResponses(orders []entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *uc.toOrderResponse(o))
	}
	return out
}
