package services

import (
	"context"

	"coop-admin/internal/adapters/persistence/repositories"
	"coop-admin/internal/core/domain"
	"coop-admin/internal/pkg/pagination"
)

// AporteService serves the contributions page
type AporteService struct {
	aporteRepo repositories.AporteRepository
}

// NewAporteService creates a new aporte service
func NewAporteService(aporteRepo repositories.AporteRepository) *AporteService {
	return &AporteService{aporteRepo: aporteRepo}
}

// ListAportesInput represents list aportes input
type ListAportesInput struct {
	Page       int
	Limit      int
	AsociadoID uint
	// Estado filters by verification state when non-nil
	Estado *bool
}

// ListAportes lists contributions, newest first
func (s *AporteService) ListAportes(ctx context.Context, input ListAportesInput) (*pagination.Response, error) {
	params := pagination.New(input.Page, input.Limit)
	filter := repositories.AporteFilter{AsociadoID: input.AsociadoID, Estado: input.Estado}

	aportes, total, err := s.aporteRepo.List(ctx, filter, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}
	return pagination.NewResponse(aportes, params, total), nil
}

// GetAporte returns a contribution by ID
func (s *AporteService) GetAporte(ctx context.Context, id uint) (*domain.Aporte, error) {
	return s.aporteRepo.GetByID(ctx, id)
}
