package repositories

import (
	"context"

	"coop-admin/internal/core/domain"
)

// UserFilter narrows user listings; zero values mean "any"
type UserFilter struct {
	Role   domain.Role
	Status domain.UserStatus
	Search string
}

// AporteFilter narrows contribution listings
type AporteFilter struct {
	AsociadoID uint
	Estado     *bool
}

// CuotaFilter narrows installment listings
type CuotaFilter struct {
	CreditoID uint
	Estado    domain.EstadoCuota
}

// CreditoFilter narrows credit request listings
type CreditoFilter struct {
	AsociadoID uint
	Estado     domain.EstadoCredito
}

// UserRepository defines user repository interface
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter, offset, limit int) ([]domain.User, int64, error)
}

// AporteRepository defines contribution repository interface
type AporteRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.Aporte, error)
	List(ctx context.Context, filter AporteFilter, offset, limit int) ([]domain.Aporte, int64, error)
}

// CuotaRepository defines installment repository interface
type CuotaRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.Cuota, error)
	List(ctx context.Context, filter CuotaFilter, offset, limit int) ([]domain.Cuota, int64, error)
}

// CreditoRepository defines credit request repository interface
type CreditoRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.Credito, error)
	List(ctx context.Context, filter CreditoFilter, offset, limit int) ([]domain.Credito, int64, error)
}

// Set bundles the repositories a data source provides
type Set struct {
	Users    UserRepository
	Aportes  AporteRepository
	Cuotas   CuotaRepository
	Creditos CreditoRepository
}
