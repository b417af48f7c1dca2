package views

import "github.com/yurizinlala/bike-erp/internal/domain/entity"

// KanbanBoard pedidos particionados pelos quatro estágios fixos do fluxo,
// preservando a ordem de inserção dentro de cada coluna.
type KanbanBoard struct {
	New     []entity.Order
	Prep    []entity.Order
	Payment []entity.Order
	Done    []entity.Order
}

// Total soma dos pedidos em todas as colunas.
func (b KanbanBoard) Total() int {
	return len(b.New) + len(b.Prep) + len(b.Payment) + len(b.Done)
}

// Kanban agrupa os pedidos por status. Todo pedido cai em exatamente uma
// coluna; status fora do conjunto fixo cai na coluna inicial.
func Kanban(orders []entity.Order) KanbanBoard {
	b := KanbanBoard{
		New:     []entity.Order{},
		Prep:    []entity.Order{},
		Payment: []entity.Order{},
		Done:    []entity.Order{},
	}
	for _, o := range orders {
		switch o.Status {
		case entity.StatusPrep:
			b.Prep = append(b.Prep, o)
		case entity.StatusPayment:
			b.Payment = append(b.Payment, o)
		case entity.StatusDone:
			b.Done = append(b.Done, o)
		default:
			b.New = append(b.New, o)
		}
	}
	return b
}
