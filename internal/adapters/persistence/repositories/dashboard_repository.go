package repositories

import (
	"context"
	"time"

	"coop-admin/internal/adapters/persistence/models"
	"coop-admin/internal/core/domain"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultSeriesMonths is how many monthly buckets the dashboard series carry
const DefaultSeriesMonths = 6

// DashboardRepository aggregates the admin dashboard straight from MySQL.
// It replaces the mock resolver once DATA_SOURCE=mysql.
type DashboardRepository struct {
	db     *gorm.DB
	months int
	now    func() time.Time
}

// NewDashboardRepository creates a new dashboard aggregator
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{
		db:     db,
		months: DefaultSeriesMonths,
		now:    time.Now,
	}
}

// FetchDashboardData returns the aggregate; any query failure is returned
func (r *DashboardRepository) FetchDashboardData(ctx context.Context) (domain.DashboardData, error) {
	var data domain.DashboardData
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&data.TotalUsers).Error; err != nil {
		return domain.DashboardData{}, errors.Wrap(err, "count users")
	}

	if err := db.Model(&models.Credito{}).
		Where("estado = ?", string(domain.CreditoActivo)).
		Count(&data.ActiveCredits).Error; err != nil {
		return domain.DashboardData{}, errors.Wrap(err, "count active creditos")
	}

	if err := db.Model(&models.Credito{}).
		Where("estado = ?", string(domain.CreditoPendiente)).
		Count(&data.PendingCredits).Error; err != nil {
		return domain.DashboardData{}, errors.Wrap(err, "count pending creditos")
	}

	// Payment supports awaiting review: receipt uploaded, aporte not settled yet
	if err := db.Model(&models.Aporte{}).
		Where("estado = ? AND comprobante IS NOT NULL", false).
		Count(&data.PendingPaymentSupports).Error; err != nil {
		return domain.DashboardData{}, errors.Wrap(err, "count pending payment supports")
	}

	start := monthStart(r.now(), r.months)

	var savings []struct {
		FechaAporte time.Time
		Monto       decimal.Decimal
	}
	if err := db.Model(&models.Aporte{}).
		Select("fecha_aporte, monto").
		Where("estado = ? AND fecha_aporte >= ?", true, start).
		Scan(&savings).Error; err != nil {
		return domain.DashboardData{}, errors.Wrap(err, "load savings series")
	}

	var deactivations []struct {
		UpdatedAt time.Time
	}
	if err := db.Model(&models.User{}).
		Select("updated_at").
		Where("status = ? AND updated_at >= ?", string(domain.StatusInactivo), start).
		Scan(&deactivations).Error; err != nil {
		return domain.DashboardData{}, errors.Wrap(err, "load deactivation series")
	}

	sums := make([]decimal.Decimal, r.months)
	for _, s := range savings {
		if i := monthIndex(start, s.FechaAporte, r.months); i >= 0 {
			sums[i] = sums[i].Add(s.Monto)
		}
	}
	data.SavingsTransactions = make([]float64, r.months)
	for i, sum := range sums {
		data.SavingsTransactions[i] = sum.InexactFloat64()
	}

	data.DeactivationRequests = make([]float64, r.months)
	for _, d := range deactivations {
		if i := monthIndex(start, d.UpdatedAt, r.months); i >= 0 {
			data.DeactivationRequests[i]++
		}
	}

	return data, nil
}

// monthStart returns the first instant of the oldest bucket
func monthStart(now time.Time, months int) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first.AddDate(0, -(months - 1), 0)
}

// monthIndex returns the bucket t falls into, or -1 outside the window
func monthIndex(start, t time.Time, months int) int {
	t = t.In(start.Location())
	i := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
	if t.Before(start) || i < 0 || i >= months {
		return -1
	}
	return i
}
