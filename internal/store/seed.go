package store

import (
	"github.com/shopspring/decimal"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// Seed devolve o dataset semente usado quando não há snapshot válido.
// Os ids fixos permitem referenciar os registros em demonstrações e testes.
func Seed() Snapshot {
	return Snapshot{
		Version:    SnapshotVersion,
		Products:   seedProducts(),
		Clients:    seedClients(),
		Orders:     seedOrders(),
		Pendencies: seedPendencies(),
		Rentals:    seedRentals(),
		Settings:   DefaultSettings(),
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "E-Bike Sport 500W", Price: decimal.NewFromInt(8500), Category: entity.CategoryBicicleta, Quantity: 3, MinStock: 2, Location: "Loja Principal"},
		{ID: "p2", Name: "E-Bike City", Price: decimal.NewFromInt(6200), Category: entity.CategoryBicicleta, Quantity: 1, MinStock: 2, Location: "Loja Principal"},
		{ID: "p3", Name: "E-Bike Cargo", Price: decimal.NewFromInt(9000), Category: entity.CategoryBicicleta, Quantity: 0, MinStock: 1, Location: "Depósito"},
		{ID: "p4", Name: "E-Bike Foldable", Price: decimal.NewFromInt(5500), Category: entity.CategoryBicicleta, Quantity: 5, MinStock: 2, Location: "Vitrine"},
		{ID: "a1", Name: "Bateria Extra 48V", Price: decimal.NewFromInt(2500), Category: entity.CategoryAcessorio, Quantity: 4, MinStock: 5, Location: "Prateleira A"},
		{ID: "a2", Name: "Capacete Pro", Price: decimal.NewFromInt(250), Category: entity.CategoryAcessorio, Quantity: 15, MinStock: 5, Location: "Prateleira B"},
		{ID: "a3", Name: "Cadeado U-Lock", Price: decimal.NewFromInt(180), Category: entity.CategoryAcessorio, Quantity: 8, MinStock: 3, Location: "Prateleira B"},
		{ID: "p_brake", Name: "Pastilha de Freio", Price: decimal.NewFromInt(45), Category: entity.CategoryPeca, Quantity: 22, MinStock: 10, Location: "Gaveta 3"},
		{ID: "p_tire", Name: "Pneu Aro 26", Price: decimal.NewFromInt(120), Category: entity.CategoryPeca, Quantity: 2, MinStock: 4, Location: "Estoque Fundos"},
	}
}

func seedClients() []entity.Client {
	return []entity.Client{
		{
			ID: "1", Name: "Roberto Silva", Phone: "11999998888", BirthDate: "03-15",
			Notes:     "Cliente VIP.",
			Purchases: []entity.PurchaseHistory{}, Revisions: []entity.RevisionHistory{},
			LastPurchaseDate: "2025-12-08", DaysSinceLastPurchase: 15,
			RevisionStatus: entity.RevisionDue,
		},
		{
			ID: "2", Name: "Julia Mendes", Phone: "11988887777", BirthDate: "12-23",
			Purchases: []entity.PurchaseHistory{}, Revisions: []entity.RevisionHistory{},
			LastPurchaseDate: "2025-11-20", DaysSinceLastPurchase: 33,
			RevisionStatus: entity.RevisionScheduled, IsScheduled: true, ScheduledDate: "2025-12-24",
		},
		{
			ID: "3", Name: "Carlos 'Cadão' Oliveira", Phone: "11977776666", BirthDate: "05-10",
			Notes:     "Usa a bike para delivery.",
			Purchases: []entity.PurchaseHistory{}, Revisions: []entity.RevisionHistory{},
			LastPurchaseDate: "2025-11-08", DaysSinceLastPurchase: 45,
			RevisionStatus: entity.RevisionOverdue,
		},
		{
			ID: "4", Name: "Amanda Costa", Phone: "21999990000", BirthDate: "12-23",
			Purchases: []entity.PurchaseHistory{}, Revisions: []entity.RevisionHistory{},
			LastPurchaseDate: "2025-12-03", DaysSinceLastPurchase: 20,
			RevisionStatus: entity.RevisionDue,
		},
	}
}

func seedOrders() []entity.Order {
	return []entity.Order{
		{ID: "ord-101", ClientID: "1", ClientName: "Roberto Silva", Type: entity.OrderVenda, Status: entity.StatusNew, Value: decimal.NewFromInt(8750), Date: "2025-12-23"},
		{ID: "ord-102", ClientID: "2", ClientName: "Julia Mendes", Type: entity.OrderServico, Status: entity.StatusPrep, Value: decimal.NewFromInt(350), Date: "2025-12-22"},
		{ID: "ord-103", ClientID: "3", ClientName: "Carlos Oliveira", Type: entity.OrderServico, Status: entity.StatusPayment, Value: decimal.NewFromInt(80), Date: "2025-12-20"},
		// Pedidos de clientes avulsos: sem ClientID, fica só o nome.
		{ID: "ord-104", ClientName: "Condomínio Solar", Type: entity.OrderVenda, Status: entity.StatusNew, Value: decimal.NewFromInt(18000), Date: "2025-12-23"},
		{ID: "ord-105", ClientName: "Ana Clara", Type: entity.OrderServico, Status: entity.StatusDone, Value: decimal.NewFromInt(120), Date: "2025-12-18"},
	}
}

func seedPendencies() []entity.Pendency {
	return []entity.Pendency{
		{ID: "1", Title: "Pagamento em atraso", Description: "O cliente Roberto Silva está com um pagamento pendente há 5 dias.", Severity: entity.SeverityCritical, Date: "2025-12-18"},
		{ID: "2", Title: "Estoque baixo: Pneu Aro 26", Description: "Restam apenas 2 unidades no estoque.", Severity: entity.SeverityWarning, Date: "2025-12-22"},
	}
}

func seedRentals() []entity.Rental {
	return []entity.Rental{
		{ID: "r1", ClientName: "João Silva", Bike: "E-Bike City #04", Status: entity.RentalActive, DueDate: "2025-12-28", Price: decimal.NewFromInt(150)},
		{ID: "r2", ClientName: "Maria Santos", Bike: "E-Bike Sport #12", Status: entity.RentalOverdue, DueDate: "2025-12-20", Price: decimal.NewFromInt(200)},
		{ID: "r3", ClientName: "Pedro Souza", Bike: "E-Bike Cargo #01", Status: entity.RentalCompleted, DueDate: "2025-12-15", Price: decimal.NewFromInt(180)},
	}
}

// DefaultSettings valores iniciais das configurações da loja.
func DefaultSettings() entity.Settings {
	return entity.Settings{
		Profile: entity.ShopProfile{
			Name:     "Bike Elétrica Natal",
			Address:  "Av. Engenheiro Roberto Freire, 1234",
			WhatsApp: "+55 84 99999-8888",
		},
		Templates: entity.MessageTemplates{
			Revision15d: "Olá {{nome}}, sua bike completou 15 dias! Lembre-se de reapertar os parafusos.",
			Birthday:    "Parabéns {{nome}}! 🎂 Temos um presente para você: 10% OFF na revisão este mês!",
		},
	}
}
