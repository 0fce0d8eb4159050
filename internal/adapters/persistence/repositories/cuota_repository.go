package repositories

import (
	"context"

	"coop-admin/internal/adapters/persistence/models"
	"coop-admin/internal/core/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cuotaRepository implements CuotaRepository interface
type cuotaRepository struct {
	db *gorm.DB
}

// NewCuotaRepository creates a new installment repository
func NewCuotaRepository(db *gorm.DB) CuotaRepository {
	return &cuotaRepository{db: db}
}

// GetByID gets an installment by ID
func (r *cuotaRepository) GetByID(ctx context.Context, id uint) (*domain.Cuota, error) {
	var row models.Cuota
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, notFound(err, domain.ErrCuotaNotFound, "get cuota")
	}
	c := row.ToDomain()
	return &c, nil
}

// List lists installments ordered by credit and sequence number
func (r *cuotaRepository) List(ctx context.Context, filter CuotaFilter, offset, limit int) ([]domain.Cuota, int64, error) {
	var rows []*models.Cuota
	var total int64

	filtered := func(query *gorm.DB) *gorm.DB {
		if filter.CreditoID != 0 {
			query = query.Where("credito_id = ?", filter.CreditoID)
		}
		if filter.Estado != "" {
			query = query.Where("estado = ?", string(filter.Estado))
		}
		return query
	}

	if err := r.db.WithContext(ctx).Model(&models.Cuota{}).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count cuotas")
	}

	err := r.db.WithContext(ctx).Scopes(filtered).Order("credito_id ASC, numero_cuota ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list cuotas")
	}

	cuotas := make([]domain.Cuota, len(rows))
	for i, row := range rows {
		cuotas[i] = row.ToDomain()
	}
	return cuotas, total, nil
}
