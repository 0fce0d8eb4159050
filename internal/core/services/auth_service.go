package services

import (
	"context"
	"strings"
	"time"

	"coop-admin/internal/adapters/persistence/repositories"
	"coop-admin/internal/config"
	"coop-admin/internal/core/domain"
	"coop-admin/internal/pkg/jwt"

	"github.com/pkg/errors"
)

// AuthService issues the session token the admin UI stores under its
// credential key. There is no password check: the token only marks that a
// session exists.
type AuthService struct {
	userRepo repositories.UserRepository
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginOutput carries the issued token and the user it was issued for
type LoginOutput struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

// Login looks the user up by email and issues a session token.
// Inactive users are refused.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := domain.Validate(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.StatusActivo {
		return nil, domain.ErrUserInactive
	}

	token, err := jwt.GenerateSessionToken(user.ID, user.Email, string(user.Role), s.jwtCfg.Secret, s.jwtCfg.TokenMins)
	if err != nil {
		return nil, errors.Wrap(err, "sign session token")
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: s.now().Add(time.Duration(s.jwtCfg.TokenMins) * time.Minute),
		User:      user,
	}, nil
}
