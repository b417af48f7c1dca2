package entity

import "github.com/shopspring/decimal"

// Categorias usuais de produto. Conjunto aberto: a loja pode cadastrar outras.
const (
	CategoryBicicleta = "Bicicleta"
	CategoryPeca      = "Peça"
	CategoryAcessorio = "Acessório"
	CategoryServico   = "Serviço"
)

// Product representa um item de estoque da loja.
// Quantity e MinStock nunca são negativos (validado na borda da aplicação).
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	MinStock int             `json:"minStock"`
	Location string          `json:"location"`
}

// LowStock indica estoque no limite ou abaixo dele (Quantity <= MinStock).
func (p Product) LowStock() bool { return p.Quantity <= p.MinStock }

// OutOfStock indica estoque zerado.
func (p Product) OutOfStock() bool { return p.Quantity == 0 }
