package main

import (
	"os"
	"os/signal"
	"syscall"

	"coop-admin/internal/adapters/http/middleware"
	"coop-admin/internal/adapters/http/routes"
	"coop-admin/internal/adapters/persistence/models"
	"coop-admin/internal/adapters/persistence/repositories"
	"coop-admin/internal/config"
	"coop-admin/internal/core/loading"
	"coop-admin/internal/core/mockdata"
	"coop-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	log := config.Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	log = config.SetupLogger(cfg)

	// Pick the data source
	var (
		repos    *repositories.Set
		provider services.DashboardProvider
	)
	if cfg.UsesMySQL() {
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer config.CloseDatabase()

		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("❌ Failed to auto migrate: %v", err)
		}
		log.Info("✅ Database migration completed")

		if cfg.IsDev() {
			if err := config.NewSeeder(db).Run(); err != nil {
				log.Warnf("⚠️ Warning: Failed to seed fixtures: %v", err)
			}
		}

		repos = repositories.NewGormSet(db)
		provider = repositories.NewDashboardRepository(db)
	} else {
		repos = repositories.NewFixtureSet()
		provider = mockdata.NewProvider(cfg.Dashboard.MockDelay)
		log.WithField("delay", cfg.Dashboard.MockDelay).Info("🧪 Serving mock fixtures")
	}

	dashboardService := services.NewDashboardService(provider, log, loading.WithDelay(cfg.Dashboard.LoadingDelay))
	defer dashboardService.Close()

	// Scheduled dashboard refresh
	cronService := services.NewCronService(cfg.Dashboard.RefreshCron, dashboardService, log)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start scheduler: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Coop Admin API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, repos, dashboardService, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Infof("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	log := config.Logger()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Errorf("❌ Error during shutdown: %v", err)
	}
	log.Info("✅ Server stopped gracefully")
}
