package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/yurizinlala/bike-erp/internal/application/usecase"
	"github.com/yurizinlala/bike-erp/internal/infrastructure/localstore"
	httpRouter "github.com/yurizinlala/bike-erp/internal/interfaces/http"
	"github.com/yurizinlala/bike-erp/internal/metrics"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/pkg/config"
	"github.com/yurizinlala/bike-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	snapshots, err := localstore.New(cfg.Storage.Driver, cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("driver de persistência")
	}

	mset := metrics.New()

	st := store.New(store.Options{
		Snapshots: snapshots,
		Key:       cfg.Storage.Key,
		Logger:    log,
		Metrics:   mset,
	})

	productUC := usecase.NewProductUseCase(st)
	clientUC := usecase.NewClientUseCase(st)
	orderUC := usecase.NewOrderUseCase(st)
	pendencyUC := usecase.NewPendencyUseCase(st)
	rentalUC := usecase.NewRentalUseCase(st)
	settingsUC := usecase.NewSettingsUseCase(st)
	dashboardUC := usecase.NewDashboardUseCase(st)
	birthdayUC := usecase.NewBirthdayUseCase(st)
	revisionUC := usecase.NewRevisionUseCase(st)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log, mset))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bike ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(mset.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		ClientUC:    clientUC,
		OrderUC:     orderUC,
		PendencyUC:  pendencyUC,
		RentalUC:    rentalUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		BirthdayUC:  birthdayUC,
		RevisionUC:  revisionUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
