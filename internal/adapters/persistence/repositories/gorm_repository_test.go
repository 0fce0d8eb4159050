package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"coop-admin/internal/adapters/persistence/models"
	"coop-admin/internal/config"
	"coop-admin/internal/core/domain"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database with the production schema.
// One pooled connection keeps every query on the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase(sqlite.Open(":memory:"), config.DatabaseConfig{
		Pool: config.PoolConfig{MaxIdleConns: 1, MaxOpenConns: 1},
	}, false)
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newSeededSet(t *testing.T) *Set {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, config.NewSeeder(db).Run())
	return NewGormSet(db)
}

func TestGormUsers_FilterAndPage(t *testing.T) {
	set := newSeededSet(t)
	ctx := context.Background()

	all, total, err := set.Users.List(ctx, UserFilter{}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, all, 6)

	socios, total, err := set.Users.List(ctx, UserFilter{Role: domain.RoleSocio, Status: domain.StatusActivo}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, u := range socios {
		assert.Equal(t, domain.RoleSocio, u.Role)
		assert.Equal(t, domain.StatusActivo, u.Status)
	}

	second, total, err := set.Users.List(ctx, UserFilter{}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	require.Len(t, second, 2)
	assert.Equal(t, uint(3), second[0].ID)
	assert.Equal(t, uint(4), second[1].ID)
}

func TestGormUsers_SearchStaysWithinRole(t *testing.T) {
	set := newSeededSet(t)
	ctx := context.Background()

	// Every socio's email matches; the role filter must still apply to each
	// branch of the search.
	users, total, err := set.Users.List(ctx, UserFilter{Role: domain.RoleGestor, Search: "correo.com"}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, users)

	users, total, err = set.Users.List(ctx, UserFilter{Role: domain.RoleSocio, Status: domain.StatusInactivo, Search: "correo.com"}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, uint(5), users[0].ID)

	users, _, err = set.Users.List(ctx, UserFilter{Search: "79876543"}, 0, 100)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Jorge Enrique Pérez", users[0].Names)
}

func TestGormUsers_NotFound(t *testing.T) {
	set := newSeededSet(t)
	ctx := context.Background()

	u, err := set.Users.GetByEmail(ctx, "carlos.ruiz@coopahorro.co")
	require.NoError(t, err)
	assert.Equal(t, uint(2), u.ID)

	_, err = set.Users.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = set.Users.GetByEmail(ctx, "nadie@correo.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGormAportes_FilterOrderAndAsociado(t *testing.T) {
	set := newSeededSet(t)
	ctx := context.Background()

	aportes, total, err := set.Aportes.List(ctx, AporteFilter{AsociadoID: 3}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, aportes, 2)
	assert.Equal(t, uint(2), aportes[0].ID)
	assert.Equal(t, uint(1), aportes[1].ID)
	assert.Equal(t, "Luisa Martínez", aportes[0].Asociado.Nombres)
	assert.Equal(t, "52123456", aportes[0].Asociado.NumeroDeIdentificacion)

	pending := false
	_, total, err = set.Aportes.List(ctx, AporteFilter{Estado: &pending}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	a, err := set.Aportes.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("500000.5").Equal(a.Monto), a.Monto.String())
	require.NotNil(t, a.Comprobante)
	assert.Equal(t, "TC-99812", *a.Comprobante)
	assert.Equal(t, "Pedro Nel Ospina", a.Asociado.Nombres)

	a, err = set.Aportes.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, a.Comprobante)

	_, err = set.Aportes.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrAporteNotFound)
}

func TestGormCreditosAndCuotas(t *testing.T) {
	set := newSeededSet(t)
	ctx := context.Background()

	pendientes, total, err := set.Creditos.List(ctx, CreditoFilter{Estado: domain.CreditoPendiente}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, pendientes, 2)
	assert.Equal(t, uint(3), pendientes[0].ID)
	assert.Equal(t, "Pedro Nel Ospina", pendientes[0].Asociado.Nombres)

	_, total, err = set.Creditos.List(ctx, CreditoFilter{AsociadoID: 6}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, err = set.Creditos.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrCreditoNotFound)

	cuotas, total, err := set.Cuotas.List(ctx, CuotaFilter{CreditoID: 1}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for i, c := range cuotas {
		assert.Equal(t, i+1, c.NumeroCuota)
	}

	pagadas, total, err := set.Cuotas.List(ctx, CuotaFilter{Estado: domain.CuotaPagado}, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, c := range pagadas {
		assert.True(t, c.Pagado)
	}

	_, err = set.Cuotas.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCuotaNotFound)
}

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestDashboardRepository_FetchDashboardData(t *testing.T) {
	db := newTestDB(t)

	users := []models.User{
		{Names: "Activo", Status: "activo"},
		{Names: "Baja enero", Status: "inactivo", UpdatedAt: utc(2024, time.January, 10)},
		{Names: "Baja marzo", Status: "inactivo", UpdatedAt: utc(2024, time.March, 5)},
		{Names: "Baja antigua", Status: "inactivo", UpdatedAt: utc(2023, time.May, 1)},
	}
	for i := range users {
		users[i].Email = fmt.Sprintf("u%d@correo.com", i)
		users[i].Identification = fmt.Sprintf("ID-%d", i)
		users[i].Role = "socio"
		require.NoError(t, db.Create(&users[i]).Error)
	}
	owner := users[0].ID

	for _, estado := range []string{"ACTIVO", "ACTIVO", "PENDIENTE", "RECHAZADO"} {
		require.NoError(t, db.Create(&models.Credito{
			AsociadoID:     owner,
			Monto:          decimal.NewFromInt(1000000),
			PlazoMeses:     12,
			TasaInteres:    decimal.RequireFromString("1.5"),
			Estado:         estado,
			FechaSolicitud: utc(2024, time.January, 1),
		}).Error)
	}

	aportes := []models.Aporte{
		// receipt uploaded, not settled: the only pending support
		{FechaAporte: utc(2024, time.March, 10), Monto: decimal.NewFromInt(300), Estado: false, Comprobante: strPtr("TRF-1")},
		// not settled and no receipt yet
		{FechaAporte: utc(2024, time.March, 11), Monto: decimal.NewFromInt(400), Estado: false},
		{FechaAporte: utc(2023, time.November, 20), Monto: decimal.NewFromInt(100000), Estado: true, Comprobante: strPtr("TRF-2")},
		{FechaAporte: utc(2023, time.November, 2), Monto: decimal.RequireFromString("50000.5"), Estado: true},
		{FechaAporte: utc(2024, time.March, 1), Monto: decimal.NewFromInt(20000), Estado: true},
		// before the window
		{FechaAporte: utc(2023, time.August, 1), Monto: decimal.NewFromInt(7777), Estado: true},
	}
	for i := range aportes {
		aportes[i].AsociadoID = owner
		aportes[i].TipoAporte = "MENSUAL"
		aportes[i].MetodoPago = "EFECTIVO"
		require.NoError(t, db.Create(&aportes[i]).Error)
	}

	repo := NewDashboardRepository(db)
	repo.now = func() time.Time { return time.Date(2024, time.March, 18, 12, 0, 0, 0, time.UTC) }

	data, err := repo.FetchDashboardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), data.TotalUsers)
	assert.Equal(t, int64(2), data.ActiveCredits)
	assert.Equal(t, int64(1), data.PendingCredits)
	assert.Equal(t, int64(1), data.PendingPaymentSupports)
	assert.Equal(t, []float64{0, 150000.5, 0, 0, 0, 20000}, data.SavingsTransactions)
	assert.Equal(t, []float64{0, 0, 0, 1, 0, 1}, data.DeactivationRequests)
}

func TestDashboardRepository_QueryFailure(t *testing.T) {
	repo := NewDashboardRepository(newTestDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchDashboardData(ctx)
	assert.Error(t, err)
}
