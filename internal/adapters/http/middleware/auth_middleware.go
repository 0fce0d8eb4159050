package middleware

import (
	"strings"
	"time"

	"coop-admin/internal/config"
	"coop-admin/internal/core/session"
	"coop-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CookieStore is the session.CredentialStore of one request. The token is
// read from the cookie first and then from an Authorization bearer header.
type CookieStore struct {
	c      *fiber.Ctx
	cookie config.CookieConfig
	maxAge time.Duration
}

// NewCookieStore binds a credential store to the request
func NewCookieStore(c *fiber.Ctx, cookie config.CookieConfig, maxAge time.Duration) *CookieStore {
	return &CookieStore{c: c, cookie: cookie, maxAge: maxAge}
}

func (s *CookieStore) Get(key string) (string, bool, error) {
	if v := s.c.Cookies(key); v != "" {
		return v, true, nil
	}

	authHeader := s.c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), true, nil
	}
	return "", false, nil
}

func (s *CookieStore) Set(key, value string) error {
	s.c.Cookie(s.build(key, value, time.Now().Add(s.maxAge)))
	return nil
}

func (s *CookieStore) Clear(key string) error {
	s.c.Cookie(s.build(key, "", time.Unix(0, 0)))
	return nil
}

func (s *CookieStore) build(key, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		Domain:   s.cookie.Domain,
		Expires:  expires,
		Secure:   s.cookie.Secure,
		HTTPOnly: true,
		SameSite: strings.ToLower(s.cookie.SameSite),
	}
}

// responseNavigator answers a browser navigation with a 302 and any other
// client with a 401 carrying the login path.
type responseNavigator struct {
	c *fiber.Ctx
}

func (n responseNavigator) Redirect(path string) error {
	if strings.Contains(n.c.Get(fiber.HeaderAccept), fiber.MIMETextHTML) {
		return n.c.Redirect(path, fiber.StatusFound)
	}
	return response.Unauthorized(n.c, "Sesión requerida", path)
}

// SessionGate lets a request through only when a session token is present.
// The token is never validated.
func SessionGate(cfg *config.Config) fiber.Handler {
	maxAge := time.Duration(cfg.JWT.TokenMins) * time.Minute

	return func(c *fiber.Ctx) error {
		gate := session.NewGate(
			NewCookieStore(c, cfg.Cookie, maxAge),
			responseNavigator{c: c},
			session.WithTokenKey(cfg.Session.TokenKey),
			session.WithLoginPath(cfg.Session.LoginPath),
		)

		result, err := gate.Activate()
		if err != nil {
			return err
		}
		if !result.Allowed {
			// the navigator already wrote the response
			return nil
		}
		return c.Next()
	}
}
