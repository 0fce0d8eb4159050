package handlers

import (
	"coop-admin/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Root handles root endpoint
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "running",
		"message":    "🚀 Coop Admin API v1.0 is running",
		"mode":       h.cfg.AppMode,
		"dataSource": h.cfg.DataSource,
	})
}

// HealthCheck reports API and database health. In mock mode there is no
// database and it is reported as disabled.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "disabled"
	status := fiber.StatusOK
	if h.cfg.UsesMySQL() {
		dbStatus = "healthy"
		if err := config.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
			status = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}

// APIInfo handles API v1 info
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Coop Admin API v1.0",
		"version": "1.0.0",
	})
}
