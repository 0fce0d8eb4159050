package repositories

import (
	"context"
	"sort"
	"strings"

	"coop-admin/internal/core/domain"
	"coop-admin/internal/core/mockdata"
)

// Fixture repositories serve the static mock data when DATA_SOURCE=mock.
// They are read-only and safe for concurrent use.

// NewFixtureSet wires every repository against the mock fixtures
func NewFixtureSet() *Set {
	return &Set{
		Users:    &fixtureUserRepository{users: mockdata.Users()},
		Aportes:  &fixtureAporteRepository{aportes: mockdata.Aportes()},
		Cuotas:   &fixtureCuotaRepository{cuotas: mockdata.Cuotas()},
		Creditos: &fixtureCreditoRepository{creditos: mockdata.Creditos()},
	}
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[offset:end]...)
}

type fixtureUserRepository struct {
	users []domain.User
}

func (r *fixtureUserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fixtureUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fixtureUserRepository) List(ctx context.Context, filter UserFilter, offset, limit int) ([]domain.User, int64, error) {
	search := strings.ToLower(filter.Search)
	matched := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Names), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) &&
			!strings.Contains(u.Identification, search) {
			continue
		}
		matched = append(matched, u)
	}
	return page(matched, offset, limit), int64(len(matched)), nil
}

type fixtureAporteRepository struct {
	aportes []domain.Aporte
}

func (r *fixtureAporteRepository) GetByID(ctx context.Context, id uint) (*domain.Aporte, error) {
	for _, a := range r.aportes {
		if a.ID == id {
			found := a.Clone()
			return &found, nil
		}
	}
	return nil, domain.ErrAporteNotFound
}

func (r *fixtureAporteRepository) List(ctx context.Context, filter AporteFilter, offset, limit int) ([]domain.Aporte, int64, error) {
	matched := make([]domain.Aporte, 0, len(r.aportes))
	for _, a := range r.aportes {
		if filter.AsociadoID != 0 && a.Asociado.ID != filter.AsociadoID {
			continue
		}
		if filter.Estado != nil && a.Estado != *filter.Estado {
			continue
		}
		matched = append(matched, a.Clone())
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].FechaAporte.Equal(matched[j].FechaAporte) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].FechaAporte.After(matched[j].FechaAporte)
	})
	return page(matched, offset, limit), int64(len(matched)), nil
}

type fixtureCuotaRepository struct {
	cuotas []domain.Cuota
}

func (r *fixtureCuotaRepository) GetByID(ctx context.Context, id uint) (*domain.Cuota, error) {
	for _, c := range r.cuotas {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrCuotaNotFound
}

func (r *fixtureCuotaRepository) List(ctx context.Context, filter CuotaFilter, offset, limit int) ([]domain.Cuota, int64, error) {
	matched := make([]domain.Cuota, 0, len(r.cuotas))
	for _, c := range r.cuotas {
		if filter.CreditoID != 0 && c.CreditoID != filter.CreditoID {
			continue
		}
		if filter.Estado != "" && c.Estado != filter.Estado {
			continue
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreditoID == matched[j].CreditoID {
			return matched[i].NumeroCuota < matched[j].NumeroCuota
		}
		return matched[i].CreditoID < matched[j].CreditoID
	})
	return page(matched, offset, limit), int64(len(matched)), nil
}

type fixtureCreditoRepository struct {
	creditos []domain.Credito
}

func (r *fixtureCreditoRepository) GetByID(ctx context.Context, id uint) (*domain.Credito, error) {
	for _, c := range r.creditos {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrCreditoNotFound
}

func (r *fixtureCreditoRepository) List(ctx context.Context, filter CreditoFilter, offset, limit int) ([]domain.Credito, int64, error) {
	matched := make([]domain.Credito, 0, len(r.creditos))
	for _, c := range r.creditos {
		if filter.AsociadoID != 0 && c.Asociado.ID != filter.AsociadoID {
			continue
		}
		if filter.Estado != "" && c.Estado != filter.Estado {
			continue
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].FechaSolicitud.Equal(matched[j].FechaSolicitud) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].FechaSolicitud.After(matched[j].FechaSolicitud)
	})
	return page(matched, offset, limit), int64(len(matched)), nil
}
