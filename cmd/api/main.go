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
	"github.com/serviceflow/serviceflow-api/internal/application/analytics"
	"github.com/serviceflow/serviceflow-api/internal/application/auth"
	"github.com/serviceflow/serviceflow-api/internal/application/debts"
	"github.com/serviceflow/serviceflow-api/internal/application/inventory"
	"github.com/serviceflow/serviceflow-api/internal/application/repairs"
	"github.com/serviceflow/serviceflow-api/internal/application/sales"
	"github.com/serviceflow/serviceflow-api/internal/infrastructure/notify"
	infrapdf "github.com/serviceflow/serviceflow-api/internal/infrastructure/pdf"
	"github.com/serviceflow/serviceflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/serviceflow/serviceflow-api/internal/interfaces/http"
	"github.com/serviceflow/serviceflow-api/pkg/config"
	"github.com/serviceflow/serviceflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := inventory.NewProductUseCase(productRepo)
	partUC := inventory.NewPartUseCase(partRepo)
	ticketUC := sales.NewTicketUseCase(ticketRepo, txRunner, log.Component("sales"))

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := sales.NewReceiptUseCase(ticketRepo, productRepo, receiptGenerator)

	notifier := notify.NewTwilioNotifier(cfg.Twilio, log.Component("notify"))
	workOrderUC := repairs.NewWorkOrderUseCase(workOrderRepo, notifier, log.Component("repairs"))

	debtUC := debts.NewDebtUseCase(workOrderRepo, ticketRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ServiceFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		PartUC:      partUC,
		TicketUC:    ticketUC,
		ReceiptUC:   receiptUC,
		WorkOrderUC: workOrderUC,
		DebtUC:      debtUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
