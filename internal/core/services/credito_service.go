package services

import (
	"context"

	"coop-admin/internal/adapters/persistence/repositories"
	"coop-admin/internal/core/domain"
	"coop-admin/internal/pkg/pagination"

	"github.com/pkg/errors"
)

// CreditoService serves the credit request and installment pages
type CreditoService struct {
	creditoRepo repositories.CreditoRepository
	cuotaRepo   repositories.CuotaRepository
}

// NewCreditoService creates a new credito service
func NewCreditoService(creditoRepo repositories.CreditoRepository, cuotaRepo repositories.CuotaRepository) *CreditoService {
	return &CreditoService{
		creditoRepo: creditoRepo,
		cuotaRepo:   cuotaRepo,
	}
}

// ListCreditosInput represents list creditos input
type ListCreditosInput struct {
	Page       int
	Limit      int
	AsociadoID uint
	Estado     string
}

// ListCuotasInput represents list cuotas input
type ListCuotasInput struct {
	Page      int
	Limit     int
	CreditoID uint
	Estado    string
}

// ListCreditos lists credit requests, newest first
func (s *CreditoService) ListCreditos(ctx context.Context, input ListCreditosInput) (*pagination.Response, error) {
	estado := domain.EstadoCredito(input.Estado)
	if estado != "" && !estado.Valid() {
		return nil, errors.Wrapf(domain.ErrInvalidEnum, "estado %q", input.Estado)
	}

	params := pagination.New(input.Page, input.Limit)
	filter := repositories.CreditoFilter{AsociadoID: input.AsociadoID, Estado: estado}

	creditos, total, err := s.creditoRepo.List(ctx, filter, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}
	return pagination.NewResponse(creditos, params, total), nil
}

// GetCredito returns a credit request by ID
func (s *CreditoService) GetCredito(ctx context.Context, id uint) (*domain.Credito, error) {
	return s.creditoRepo.GetByID(ctx, id)
}

// ListCuotas lists installments ordered by credit and installment number.
// Filtering by a credit that does not exist is reported as not found.
func (s *CreditoService) ListCuotas(ctx context.Context, input ListCuotasInput) (*pagination.Response, error) {
	estado := domain.EstadoCuota(input.Estado)
	if estado != "" && !estado.Valid() {
		return nil, errors.Wrapf(domain.ErrInvalidEnum, "estado %q", input.Estado)
	}
	if input.CreditoID != 0 {
		if _, err := s.creditoRepo.GetByID(ctx, input.CreditoID); err != nil {
			return nil, err
		}
	}

	params := pagination.New(input.Page, input.Limit)
	filter := repositories.CuotaFilter{CreditoID: input.CreditoID, Estado: estado}

	cuotas, total, err := s.cuotaRepo.List(ctx, filter, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}
	return pagination.NewResponse(cuotas, params, total), nil
}

// GetCuota returns an installment by ID
func (s *CreditoService) GetCuota(ctx context.Context, id uint) (*domain.Cuota, error) {
	return s.cuotaRepo.GetByID(ctx, id)
}
