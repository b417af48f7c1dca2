package views

import "github.com/yurizinlala/bike-erp/internal/domain/entity"

// RevisionBucket faixa de dias desde a última compra, ou a agenda.
type RevisionBucket string

const (
	Bucket15d       RevisionBucket = "15d" // [15, 20) dias
	Bucket20d       RevisionBucket = "20d" // [20, 45) dias
	Bucket45d       RevisionBucket = "45d" // [45, ∞) dias
	BucketScheduled RevisionBucket = "scheduled"
)

// RevisionBuckets baldes na ordem das abas da tela.
var RevisionBuckets = []RevisionBucket{Bucket15d, Bucket20d, Bucket45d, BucketScheduled}

// Valid informa se o balde pertence ao conjunto conhecido.
func (b RevisionBucket) Valid() bool {
	switch b {
	case Bucket15d, Bucket20d, Bucket45d, BucketScheduled:
		return true
	}
	return false
}

// RevisionDue particiona os clientes pelo balde pedido. As faixas de dias
// são intervalos meio-abertos e mutuamente exclusivos; cliente com revisão
// agendada sai de todas as faixas de dias, qualquer que seja a contagem.
func RevisionDue(clients []entity.Client, bucket RevisionBucket) []entity.Client {
	out := make([]entity.Client, 0)
	for _, c := range clients {
		if bucket == BucketScheduled {
			if c.Scheduled() {
				out = append(out, c)
			}
			continue
		}
		if c.Scheduled() {
			continue
		}
		days := c.DaysSinceLastPurchase
		var in bool
		switch bucket {
		case Bucket15d:
			in = days >= 15 && days < 20
		case Bucket20d:
			in = days >= 20 && days < 45
		case Bucket45d:
			in = days >= 45
		}
		if in {
			out = append(out, c)
		}
	}
	return out
}
