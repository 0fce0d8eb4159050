package services

import (
	"context"
	"strings"

	"coop-admin/internal/adapters/persistence/repositories"
	"coop-admin/internal/core/domain"
	"coop-admin/internal/pkg/pagination"

	"github.com/pkg/errors"
)

// UserService handles user listing for the admin pages
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersInput represents list users input
type ListUsersInput struct {
	Page   int
	Limit  int
	Role   string
	Status string
	Search string
}

// ListUsers lists users with pagination. Role and status must be one of the
// enumerated literals when given.
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) (*pagination.Response, error) {
	filter := repositories.UserFilter{
		Role:   domain.Role(input.Role),
		Status: domain.UserStatus(input.Status),
		Search: strings.TrimSpace(input.Search),
	}
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, errors.Wrapf(domain.ErrInvalidEnum, "role %q", input.Role)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, errors.Wrapf(domain.ErrInvalidEnum, "status %q", input.Status)
	}

	params := pagination.New(input.Page, input.Limit)
	users, total, err := s.userRepo.List(ctx, filter, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}

	return pagination.NewResponse(users, params, total), nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
