package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/audit"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/quota"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/core/scheduler"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/handlers"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/models"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/repositories"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/modules/bizdesk/services"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/bizdesk-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/bizdesk-be/cmd/bizdesk-api/docs"
)

// @title BizDesk API
// @version 1.0
// @description Sales, customers, inventory and analytics for small businesses
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, !cfg.IsProduction())
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("🚀 Starting bizdesk-api")

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("❌ JWT_SECRET is required")
	}

	loc := cfg.Location()

	// Init database
	db := database.NewDB(database.Options{
		Driver:  cfg.DBDriver,
		DSN:     cfg.DatabaseURL,
		Verbose: cfg.LogLevel == "debug",
	})
	defer db.Close()

	if cfg.DBAutoMigrate {
		if err := db.GORM.AutoMigrate(
			&auth.Owner{},
			&models.Customer{},
			&models.InventoryItem{},
			&models.Sale{},
			&models.SaleItem{},
			&audit.AuditLog{},
		); err != nil {
			log.Fatal().Err(err).Msg("❌ Auto-migration failed")
		}
		log.Info().Msg("✅ Database schema migrated")
	}

	// Init repositories
	customerRepo := repositories.NewCustomerRepo(db.GORM)
	saleRepo := repositories.NewSaleRepo(db.GORM)
	inventoryRepo := repositories.NewInventoryRepo(db.GORM)

	// Init core services
	authService := auth.NewService(db.GORM, cfg.JWTSecret)
	auditService := audit.NewService(db.GORM)
	aggregator := analytics.NewAggregator(db.GORM)

	// Init LLM client (optional)
	llmClient, err := llm.NewClient(llm.ProviderConfig{
		Type:      llm.ProviderType(cfg.LLMProvider),
		OpenAIKey: cfg.OpenAIAPIKey,
		GeminiKey: cfg.GeminiAPIKey,
		GroqKey:   cfg.GroqAPIKey,
		Model:     cfg.LLMModel,
	})
	llmProvider := ""
	if err != nil {
		log.Warn().Err(err).Str("provider", cfg.LLMProvider).Msg("⚠️  AI assistant disabled")
	} else {
		llmProvider = llmClient.ProviderName()
	}

	// Init AI quota (Redis when configured)
	var limiter quota.Limiter = quota.Noop{}
	if cfg.RedisURL != "" {
		redisClient, err := quota.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️  Redis unavailable, AI quota disabled")
		} else {
			defer redisClient.Close()
			limiter = quota.NewRedisLimiter(redisClient, int64(cfg.AIDailyQuota), loc)
			log.Info().Int("daily_quota", cfg.AIDailyQuota).Msg("🔒 AI quota enabled")
		}
	}

	// Init module services
	customerService := services.NewCustomerService(customerRepo, auditService)
	inventoryService := services.NewInventoryService(inventoryRepo, auditService)
	saleService := services.NewSaleService(db.GORM, saleRepo, inventoryRepo, customerService, services.NewInvoiceGenerator(), auditService)
	analyticsService := services.NewAnalyticsService(aggregator, loc)
	exportService := services.NewExportService(export.NewService(), saleService, analyticsService, authService)
	assistantService := services.NewAssistantService(authService, inventoryService, analyticsService, llmClient, limiter)
	digestService := services.NewDigestService(authService, analyticsService)

	// Init scheduler
	sched := scheduler.NewScheduler(loc)
	if cfg.DigestSchedule != "" {
		if err := sched.AddJob("daily-digest", cfg.DigestSchedule, digestService.Job()); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.DigestSchedule).Msg("❌ Invalid DIGEST_SCHEDULE")
		}
	}
	sched.Start()
	defer sched.Stop()

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "BizDesk API",
		ErrorHandler: handlers.ErrorHandler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(utils.RequestLogger())

	handlers.RegisterRoutes(app, &handlers.Handlers{
		Health:    handlers.NewHealthHandler(db.DB, llmProvider),
		Sale:      handlers.NewSaleHandler(saleService, analyticsService, exportService),
		Customer:  handlers.NewCustomerHandler(customerService),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		Assistant: handlers.NewAssistantHandler(assistantService),
		Audit:     handlers.NewAuditHandler(auditService),
	}, auth.AuthMiddleware(authService))

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info().Msg("🛑 Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Error().Err(err).Msg("❌ Graceful shutdown failed")
		}
	}()

	utils.LogInfo("🌐 Listening", map[string]interface{}{"port": cfg.Port, "timezone": loc.String()})
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("❌ Server stopped")
	}
}
