package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	OrderUC     *usecase.OrderUseCase
	PendencyUC  *usecase.PendencyUseCase
	RentalUC    *usecase.RentalUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *usecase.DashboardUseCase
	BirthdayUC  *usecase.BirthdayUseCase
	RevisionUC  *usecase.RevisionUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Produtos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Post("/:id/purchases", clientHandler.AddPurchase)
	clients.Post("/:id/revisions", clientHandler.AddRevision)
	clients.Delete("/:id", clientHandler.Delete)

	// Pedidos
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/kanban", orderHandler.Kanban)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)

	// Pendências
	pendencies := api.Group("/pendencies")
	pendencyHandler := NewPendencyHandler(deps.PendencyUC)
	pendencies.Post("/", pendencyHandler.Create)
	pendencies.Get("/", pendencyHandler.List)
	pendencies.Post("/:id/resolve", pendencyHandler.Resolve)

	// Aluguéis
	rentals := api.Group("/rentals")
	rentalHandler := NewRentalHandler(deps.RentalUC)
	rentals.Post("/", rentalHandler.Create)
	rentals.Get("/", rentalHandler.List)
	rentals.Put("/:id", rentalHandler.Update)
	rentals.Post("/:id/complete", rentalHandler.Complete)
	rentals.Delete("/:id", rentalHandler.Delete)

	// Configurações da loja
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Stats)

	// Aniversariantes
	birthdays := api.Group("/birthdays")
	birthdayHandler := NewBirthdayHandler(deps.BirthdayUC)
	birthdays.Get("/", birthdayHandler.List)
	birthdays.Post("/notify", birthdayHandler.Notify)

	// Revisões
	revisions := api.Group("/revisions")
	revisionHandler := NewRevisionHandler(deps.RevisionUC)
	revisions.Get("/", revisionHandler.List)
	revisions.Post("/notify", revisionHandler.Notify)
}
