package repositories

import (
	"context"

	"coop-admin/internal/adapters/persistence/models"
	"coop-admin/internal/core/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// creditoRepository implements CreditoRepository interface
type creditoRepository struct {
	db *gorm.DB
}

// NewCreditoRepository creates a new credit request repository
func NewCreditoRepository(db *gorm.DB) CreditoRepository {
	return &creditoRepository{db: db}
}

// GetByID gets a credit request with its asociado
func (r *creditoRepository) GetByID(ctx context.Context, id uint) (*domain.Credito, error) {
	var row models.Credito
	err := r.db.WithContext(ctx).
		Preload("Asociado").
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, notFound(err, domain.ErrCreditoNotFound, "get credito")
	}
	c := row.ToDomain()
	return &c, nil
}

// List lists credit requests, newest first
func (r *creditoRepository) List(ctx context.Context, filter CreditoFilter, offset, limit int) ([]domain.Credito, int64, error) {
	var rows []*models.Credito
	var total int64

	filtered := func(query *gorm.DB) *gorm.DB {
		if filter.AsociadoID != 0 {
			query = query.Where("asociado_id = ?", filter.AsociadoID)
		}
		if filter.Estado != "" {
			query = query.Where("estado = ?", string(filter.Estado))
		}
		return query
	}

	if err := r.db.WithContext(ctx).Model(&models.Credito{}).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count creditos")
	}

	err := r.db.WithContext(ctx).Scopes(filtered).Preload("Asociado").
		Order("fecha_solicitud DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list creditos")
	}

	creditos := make([]domain.Credito, len(rows))
	for i, row := range rows {
		creditos[i] = row.ToDomain()
	}
	return creditos, total, nil
}
