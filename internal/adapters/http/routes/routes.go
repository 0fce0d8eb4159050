package routes

import (
	"time"

	"coop-admin/internal/adapters/http/handlers"
	"coop-admin/internal/adapters/http/middleware"
	"coop-admin/internal/adapters/persistence/repositories"
	"coop-admin/internal/config"
	"coop-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application. repos is either the
// fixture set or the gorm set, depending on DATA_SOURCE.
func Setup(app *fiber.App, repos *repositories.Set, dashboardService *services.DashboardService, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(repos.Users, cfg.JWT)
	userService := services.NewUserService(repos.Users)
	aporteService := services.NewAporteService(repos.Aportes)
	creditoService := services.NewCreditoService(repos.Creditos, repos.Cuotas)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	userHandler := handlers.NewUserHandler(userService)
	aporteHandler := handlers.NewAporteHandler(aporteService)
	creditoHandler := handlers.NewCreditoHandler(creditoService)

	// ============================================================
	// Public routes
	// ============================================================
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api/v1")
	api.Get("/", middleware.CacheControl(time.Minute), healthHandler.APIInfo)

	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// ============================================================
	// Session-gated routes
	// ============================================================
	// Group middleware runs for every path under the prefix, so the gate is
	// attached per resource group rather than on api.
	gate := middleware.SessionGate(cfg)
	noStore := middleware.NoStore()

	dashboard := api.Group("/dashboard", gate, noStore)
	dashboard.Get("/", dashboardHandler.GetDashboard)
	dashboard.Post("/refresh", middleware.RefreshRateLimiter(), dashboardHandler.RefreshDashboard)

	users := api.Group("/users", gate, noStore)
	users.Get("/", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)

	aportes := api.Group("/aportes", gate, noStore)
	aportes.Get("/", aporteHandler.ListAportes)
	aportes.Get("/:id", aporteHandler.GetAporte)

	creditos := api.Group("/creditos", gate, noStore)
	creditos.Get("/", creditoHandler.ListCreditos)
	creditos.Get("/:id", creditoHandler.GetCredito)

	cuotas := api.Group("/cuotas", gate, noStore)
	cuotas.Get("/", creditoHandler.ListCuotas)
	cuotas.Get("/:id", creditoHandler.GetCuota)
}
