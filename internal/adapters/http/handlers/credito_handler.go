package handlers

import (
	"coop-admin/internal/core/services"
	"coop-admin/internal/pkg/pagination"
	"coop-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CreditoHandler handles credit request and installment endpoints
type CreditoHandler struct {
	creditoService *services.CreditoService
}

// NewCreditoHandler creates a new credito handler
func NewCreditoHandler(creditoService *services.CreditoService) *CreditoHandler {
	return &CreditoHandler{creditoService: creditoService}
}

// ListCreditos lists credit requests, optionally by asociadoId and estado
func (h *CreditoHandler) ListCreditos(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	asociadoID, err := optionalID(c, "asociadoId")
	if err != nil {
		return response.BadRequest(c, "Invalid asociadoId")
	}

	result, err := h.creditoService.ListCreditos(c.Context(), services.ListCreditosInput{
		Page:       params.Page,
		Limit:      params.Limit,
		AsociadoID: asociadoID,
		Estado:     c.Query("estado"),
	})
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Creditos retrieved successfully", result)
}

// GetCredito returns one credit request
func (h *CreditoHandler) GetCredito(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid credito ID")
	}

	credito, err := h.creditoService.GetCredito(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Credito retrieved successfully", credito)
}

// ListCuotas lists installments, optionally by creditoId and estado
func (h *CreditoHandler) ListCuotas(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	creditoID, err := optionalID(c, "creditoId")
	if err != nil {
		return response.BadRequest(c, "Invalid creditoId")
	}

	result, err := h.creditoService.ListCuotas(c.Context(), services.ListCuotasInput{
		Page:      params.Page,
		Limit:     params.Limit,
		CreditoID: creditoID,
		Estado:    c.Query("estado"),
	})
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Cuotas retrieved successfully", result)
}

// GetCuota returns one installment
func (h *CreditoHandler) GetCuota(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid cuota ID")
	}

	cuota, err := h.creditoService.GetCuota(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Cuota retrieved successfully", cuota)
}
