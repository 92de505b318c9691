package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/vcrm-app/vcrm-api/docs"
	"github.com/vcrm-app/vcrm-api/internal/application/analytics"
	"github.com/vcrm-app/vcrm-api/internal/application/auth"
	"github.com/vcrm-app/vcrm-api/internal/application/crm"
	"github.com/vcrm-app/vcrm-api/internal/domain/forecast"
	infrapdf "github.com/vcrm-app/vcrm-api/internal/infrastructure/pdf"
	"github.com/vcrm-app/vcrm-api/internal/infrastructure/postgres"
	httpRouter "github.com/vcrm-app/vcrm-api/internal/interfaces/http"
	"github.com/vcrm-app/vcrm-api/pkg/config"
	"github.com/vcrm-app/vcrm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("caricamento configurazione: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("avvio applicazione")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connessione a PostgreSQL")
	}
	defer pool.Close()

	// Adapter di persistenza
	userRepo := postgres.NewUserRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	oppRepo := postgres.NewOpportunityRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casi d'uso
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	contactUC := crm.NewContactUseCase(contactRepo)
	opportunityUC := crm.NewOpportunityUseCase(oppRepo, txRunner)
	taskUC := crm.NewTaskUseCase(taskRepo)
	invoiceUC := crm.NewInvoiceUseCase(invoiceRepo)

	targets := forecast.NewTargets(cfg.Targets.Monthly, cfg.Targets.Annual)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	forecastUC := analytics.NewForecastUseCase(oppRepo, invoiceRepo, taskRepo, contactRepo, targets, pdfGenerator)
	statsUC := analytics.NewStatsUseCase(contactRepo, oppRepo, taskRepo)
	searchUC := analytics.NewSearchUseCase(contactRepo, oppRepo, taskRepo)
	exportUC := analytics.NewExportUseCase(contactRepo, oppRepo, taskRepo, invoiceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in locale: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "vCRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ContactUC:     contactUC,
		OpportunityUC: opportunityUC,
		TaskUC:        taskUC,
		InvoiceUC:     invoiceUC,
		ForecastUC:    forecastUC,
		StatsUC:       statsUC,
		SearchUC:      searchUC,
		ExportUC:      exportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP terminato")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("segnale di arresto ricevuto, chiusura del server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arresto del server")
	}

	log.Info().Msg("applicazione fermata")
}
