package repositories

import (
	"context"

	"coop-admin/internal/adapters/persistence/models"
	"coop-admin/internal/core/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// aporteRepository implements AporteRepository interface
type aporteRepository struct {
	db *gorm.DB
}

// NewAporteRepository creates a new contribution repository
func NewAporteRepository(db *gorm.DB) AporteRepository {
	return &aporteRepository{db: db}
}

// GetByID gets a contribution with its asociado
func (r *aporteRepository) GetByID(ctx context.Context, id uint) (*domain.Aporte, error) {
	var row models.Aporte
	err := r.db.WithContext(ctx).
		Preload("Asociado").
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, notFound(err, domain.ErrAporteNotFound, "get aporte")
	}
	a := row.ToDomain()
	return &a, nil
}

// List lists contributions, newest first
func (r *aporteRepository) List(ctx context.Context, filter AporteFilter, offset, limit int) ([]domain.Aporte, int64, error) {
	var rows []*models.Aporte
	var total int64

	filtered := func(query *gorm.DB) *gorm.DB {
		if filter.AsociadoID != 0 {
			query = query.Where("asociado_id = ?", filter.AsociadoID)
		}
		if filter.Estado != nil {
			query = query.Where("estado = ?", *filter.Estado)
		}
		return query
	}

	if err := r.db.WithContext(ctx).Model(&models.Aporte{}).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count aportes")
	}

	err := r.db.WithContext(ctx).Scopes(filtered).Preload("Asociado").
		Order("fecha_aporte DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list aportes")
	}

	aportes := make([]domain.Aporte, len(rows))
	for i, row := range rows {
		aportes[i] = row.ToDomain()
	}
	return aportes, total, nil
}
