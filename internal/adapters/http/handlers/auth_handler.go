package handlers

import (
	"time"

	"coop-admin/internal/adapters/http/middleware"
	"coop-admin/internal/config"
	"coop-admin/internal/core/services"
	"coop-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the dev login/logout endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

func (h *AuthHandler) store(c *fiber.Ctx) *middleware.CookieStore {
	return middleware.NewCookieStore(c, h.cfg.Cookie, time.Duration(h.cfg.JWT.TokenMins)*time.Minute)
}

// Login issues a session token and stores it under the credential key
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	out, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return response.FromError(c, err)
	}

	if err := h.store(c).Set(h.cfg.Session.TokenKey, out.Token); err != nil {
		return err
	}

	config.Logger().WithField("user_id", out.User.ID).Info("🔑 Session started")
	return response.Success(c, "Login successful", out)
}

// Logout clears the credential key
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.store(c).Clear(h.cfg.Session.TokenKey); err != nil {
		return err
	}
	return response.Success(c, "Logout successful", fiber.Map{"redirect": h.cfg.Session.LoginPath})
}
