package response

import (
	"coop-admin/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Response represents a standard API response
type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 with the path the client should navigate to
func Unauthorized(c *fiber.Ctx, message, redirect string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(Response{
		Success:  false,
		Error:    message,
		Redirect: redirect,
	})
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// ServiceUnavailable sends a 503 response
func ServiceUnavailable(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusServiceUnavailable, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAporteNotFound),
		errors.Is(err, domain.ErrCuotaNotFound),
		errors.Is(err, domain.ErrCreditoNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidEnum):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserInactive):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrDashboardUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// FromError sends the response matching a domain error. Unknown errors are
// reported as a generic 500 so internals do not leak.
func FromError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		return InternalServerError(c, domain.ErrInternalServer.Error())
	}
	return Error(c, status, errors.Cause(err).Error())
}
