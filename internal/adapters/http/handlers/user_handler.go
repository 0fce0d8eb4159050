package handlers

import (
	"strconv"

	"coop-admin/internal/core/services"
	"coop-admin/internal/pkg/pagination"
	"coop-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user listing endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles listing users, filterable by role, status and a search term
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.userService.ListUsers(c.Context(), services.ListUsersInput{
		Page:   params.Page,
		Limit:  params.Limit,
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Users retrieved successfully", result)
}

// GetUser handles getting a user by ID
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetUser(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "User retrieved successfully", user)
}

// parseID reads a positive numeric path or query parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	if raw == "" {
		raw = c.Query(name)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}

// optionalID reads a numeric query filter; missing means zero
func optionalID(c *fiber.Ctx, name string) (uint, error) {
	if c.Query(name) == "" {
		return 0, nil
	}
	return parseID(c, name)
}
