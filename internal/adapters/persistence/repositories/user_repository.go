package repositories

import (
	"context"

	"coop-admin/internal/adapters/persistence/models"
	"coop-admin/internal/core/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, "get user by id")
	}
	u := user.ToDomain()
	return &u, nil
}

// GetByEmail gets a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, "get user by email")
	}
	u := user.ToDomain()
	return &u, nil
}

// List lists users with pagination
func (r *userRepository) List(ctx context.Context, filter UserFilter, offset, limit int) ([]domain.User, int64, error) {
	var rows []*models.User
	var total int64

	filtered := func(query *gorm.DB) *gorm.DB {
		if filter.Role != "" {
			query = query.Where("role = ?", string(filter.Role))
		}
		if filter.Status != "" {
			query = query.Where("status = ?", string(filter.Status))
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			query = query.Where("names LIKE ? OR identification LIKE ? OR email LIKE ?", like, like, like)
		}
		return query
	}

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.User{}).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count users")
	}

	if err := r.db.WithContext(ctx).Scopes(filtered).Order("id ASC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list users")
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.ToDomain()
	}
	return users, total, nil
}

// notFound maps gorm's missing-row error onto a domain sentinel
func notFound(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return errors.Wrap(err, op)
}
