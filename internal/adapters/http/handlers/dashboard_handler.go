package handlers

import (
	"coop-admin/internal/core/services"
	"coop-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the dashboard aggregate and its loading flag
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	view, err := h.dashboardService.Get(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Dashboard retrieved successfully", view)
}

// RefreshDashboard fetches a new snapshot now
func (h *DashboardHandler) RefreshDashboard(c *fiber.Ctx) error {
	if err := h.dashboardService.Refresh(c.Context()); err != nil {
		return response.ServiceUnavailable(c, "Failed to refresh dashboard")
	}

	view, err := h.dashboardService.Get(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Dashboard refreshed", view)
}
