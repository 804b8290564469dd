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

	"github.com/stockpilot/stockpilot-api/internal/application/access"
	"github.com/stockpilot/stockpilot-api/internal/application/identity"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
	infrapdf "github.com/stockpilot/stockpilot-api/internal/infrastructure/pdf"
	"github.com/stockpilot/stockpilot-api/internal/infrastructure/postgres"
	httpRouter "github.com/stockpilot/stockpilot-api/internal/interfaces/http"
	"github.com/stockpilot/stockpilot-api/pkg/config"
	"github.com/stockpilot/stockpilot-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	historyRepo := postgres.NewItemHistoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	saleItemRepo := postgres.NewSaleItemRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	accessSvc := access.NewService(userRepo)

	userUC := usecase.NewUserUseCase(userRepo, accessSvc)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, userRepo, accessSvc)
	orgUC := usecase.NewOrganizationUseCase(orgRepo, userRepo, settingsUC, accessSvc, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, itemRepo, accessSvc)
	itemUC := usecase.NewItemUseCase(txRunner, itemRepo, historyRepo, categoryRepo, accessSvc)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, settingsRepo, accessSvc)
	saleItemUC := usecase.NewSaleItemUseCase(saleItemRepo, saleRepo, itemRepo, accessSvc)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, settingsRepo, accessSvc)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(reportRepo, saleRepo, settingsRepo, pdfGenerator, accessSvc)

	bridge := identity.NewBridge(cfg.Clerk.Hostname, userUC, orgUC, log)
	webhookHandler, err := httpRouter.NewWebhookHandler(cfg.Clerk.WebhookSecret, bridge, log)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar webhook de identidad")
	}

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
		Title:    "StockPilot API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:         userUC,
		OrganizationUC: orgUC,
		CategoryUC:     categoryUC,
		ItemUC:         itemUC,
		SaleUC:         saleUC,
		SaleItemUC:     saleItemUC,
		NotificationUC: notificationUC,
		SettingsUC:     settingsUC,
		ReportUC:       reportUC,
		Webhook:        webhookHandler,
		JWTSecret:      cfg.JWT.Secret,
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
