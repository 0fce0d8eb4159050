package handlers

import (
	"strconv"

	"coop-admin/internal/core/services"
	"coop-admin/internal/pkg/pagination"
	"coop-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AporteHandler handles contribution endpoints
type AporteHandler struct {
	aporteService *services.AporteService
}

// NewAporteHandler creates a new aporte handler
func NewAporteHandler(aporteService *services.AporteService) *AporteHandler {
	return &AporteHandler{aporteService: aporteService}
}

// ListAportes lists contributions, optionally by asociadoId and estado
func (h *AporteHandler) ListAportes(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	asociadoID, err := optionalID(c, "asociadoId")
	if err != nil {
		return response.BadRequest(c, "Invalid asociadoId")
	}

	input := services.ListAportesInput{
		Page:       params.Page,
		Limit:      params.Limit,
		AsociadoID: asociadoID,
	}
	if raw := c.Query("estado"); raw != "" {
		estado, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid estado")
		}
		input.Estado = &estado
	}

	result, err := h.aporteService.ListAportes(c.Context(), input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Aportes retrieved successfully", result)
}

// GetAporte returns one contribution
func (h *AporteHandler) GetAporte(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid aporte ID")
	}

	aporte, err := h.aporteService.GetAporte(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Aporte retrieved successfully", aporte)
}
