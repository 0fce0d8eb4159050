// Package mockdata holds the static fixtures the admin UI is developed against
// and a delayed resolver standing in for the dashboard aggregation endpoint.
package mockdata

import (
	"time"

	"coop-admin/internal/core/domain"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var users = []domain.User{
	{ID: 1, Names: "María Fernanda Gómez", Email: "maria.gomez@coopahorro.co", Identification: "1020304050", ContactData: "+57 300 123 4567", LocationData: "Calle 10 # 20-30, Medellín", Role: domain.RoleAdministrador, Status: domain.StatusActivo},
	{ID: 2, Names: "Carlos Andrés Ruiz", Email: "carlos.ruiz@coopahorro.co", Identification: "1030405060", ContactData: "+57 301 222 3344", LocationData: "Carrera 45 # 12-08, Bogotá", Role: domain.RoleGestor, Status: domain.StatusActivo},
	{ID: 3, Names: "Luisa Martínez", Email: "luisa.martinez@correo.com", Identification: "52123456", ContactData: "+57 310 555 0101", LocationData: "Av. Siempre Viva 742, Cali", Role: domain.RoleSocio, Status: domain.StatusActivo},
	{ID: 4, Names: "Jorge Enrique Pérez", Email: "jorge.perez@correo.com", Identification: "79876543", ContactData: "+57 315 444 8899", LocationData: "Calle 5 # 3-21, Pereira", Role: domain.RoleSocio, Status: domain.StatusActivo},
	{ID: 5, Names: "Ana Sofía Castro", Email: "ana.castro@correo.com", Identification: "1098765432", ContactData: "+57 320 777 6655", LocationData: "Transversal 8 # 40-15, Bucaramanga", Role: domain.RoleSocio, Status: domain.StatusInactivo},
	{ID: 6, Names: "Pedro Nel Ospina", Email: "pedro.ospina@correo.com", Identification: "71234987", ContactData: "+57 311 909 1212", LocationData: "Vereda El Salado, Envigado", Role: domain.RoleSocio, Status: domain.StatusActivo},
}

func asociado(id uint) domain.AsociadoRef {
	for _, u := range users {
		if u.ID == id {
			return domain.AsociadoRef{ID: u.ID, Nombres: u.Names, NumeroDeIdentificacion: u.Identification}
		}
	}
	return domain.AsociadoRef{ID: id}
}

var aportes = []domain.Aporte{
	{ID: 1, FechaAporte: date(2024, time.January, 15), FechaCreacion: date(2024, time.January, 15), FechaModificacion: date(2024, time.January, 16), Monto: amount("150000"), TipoAporte: domain.TipoMensual, MetodoPago: domain.MetodoTransferencia, Estado: true, Comprobante: strPtr("TRF-2024-0001"), Asociado: asociado(3)},
	{ID: 2, FechaAporte: date(2024, time.February, 15), FechaCreacion: date(2024, time.February, 15), FechaModificacion: date(2024, time.February, 15), Monto: amount("150000"), TipoAporte: domain.TipoMensual, MetodoPago: domain.MetodoEfectivo, Estado: true, Comprobante: nil, Asociado: asociado(3)},
	{ID: 3, FechaAporte: date(2024, time.March, 1), FechaCreacion: date(2024, time.March, 1), FechaModificacion: date(2024, time.March, 2), Monto: amount("1200000"), TipoAporte: domain.TipoAnual, MetodoPago: domain.MetodoTransferencia, Estado: false, Comprobante: strPtr("TRF-2024-0113"), Asociado: asociado(4), Archivo: strPtr("soporte-0113.pdf")},
	{ID: 4, FechaAporte: date(2024, time.March, 20), FechaCreacion: date(2024, time.March, 20), FechaModificacion: date(2024, time.March, 20), Monto: amount("500000.5"), TipoAporte: domain.TipoExtraordinario, MetodoPago: domain.MetodoTarjeta, Estado: false, Comprobante: strPtr("TC-99812"), Asociado: asociado(6)},
	{ID: 5, FechaAporte: date(2024, time.April, 15), FechaCreacion: date(2024, time.April, 15), FechaModificacion: date(2024, time.April, 15), Monto: amount("80000"), TipoAporte: domain.TipoMensual, MetodoPago: domain.MetodoEfectivo, Estado: true, Comprobante: nil, Asociado: asociado(5)},
}

var creditos = []domain.Credito{
	{ID: 1, Asociado: asociado(3), Monto: amount("5000000"), PlazoMeses: 12, TasaInteres: amount("1.5"), Estado: domain.CreditoActivo, FechaSolicitud: date(2023, time.December, 1)},
	{ID: 2, Asociado: asociado(4), Monto: amount("12000000"), PlazoMeses: 36, TasaInteres: amount("1.2"), Estado: domain.CreditoPendiente, FechaSolicitud: date(2024, time.April, 2)},
	{ID: 3, Asociado: asociado(6), Monto: amount("2500000"), PlazoMeses: 6, TasaInteres: amount("1.8"), Estado: domain.CreditoPendiente, FechaSolicitud: date(2024, time.April, 10)},
	{ID: 4, Asociado: asociado(5), Monto: amount("3000000"), PlazoMeses: 12, TasaInteres: amount("1.5"), Estado: domain.CreditoRechazado, FechaSolicitud: date(2024, time.February, 20)},
	{ID: 5, Asociado: asociado(6), Monto: amount("8000000"), PlazoMeses: 24, TasaInteres: amount("1.3"), Estado: domain.CreditoActivo, FechaSolicitud: date(2023, time.October, 5)},
}

var cuotas = []domain.Cuota{
	{ID: 1, CreditoID: 1, NumeroCuota: 1, FechaVencimiento: date(2024, time.January, 5), Monto: amount("458333"), Mora: amount("0"), TotalPagar: amount("463333"), ProteccionCartera: amount("5000"), AbonoCapital: amount("383333"), Intereses: amount("75000"), AbonoExtra: amount("0"), Estado: domain.CuotaPagado, Pagado: true},
	{ID: 2, CreditoID: 1, NumeroCuota: 2, FechaVencimiento: date(2024, time.February, 5), Monto: amount("458333"), Mora: amount("12500"), TotalPagar: amount("475833"), ProteccionCartera: amount("5000"), AbonoCapital: amount("389083"), Intereses: amount("69250"), AbonoExtra: amount("0"), Estado: domain.CuotaPagado, Pagado: true},
	{ID: 3, CreditoID: 1, NumeroCuota: 3, FechaVencimiento: date(2024, time.March, 5), Monto: amount("458333"), Mora: amount("0"), TotalPagar: amount("563333"), ProteccionCartera: amount("5000"), AbonoCapital: amount("394919"), Intereses: amount("63414"), AbonoExtra: amount("100000"), Estado: domain.CuotaPendiente, Pagado: false},
	{ID: 4, CreditoID: 5, NumeroCuota: 7, FechaVencimiento: date(2024, time.May, 5), Monto: amount("401250.75"), Mora: amount("0"), TotalPagar: amount("409250.75"), ProteccionCartera: amount("8000"), AbonoCapital: amount("297250.75"), Intereses: amount("104000"), AbonoExtra: amount("0"), Estado: domain.CuotaPendiente, Pagado: false},
}

var dashboard = domain.DashboardData{
	TotalUsers:             1250,
	ActiveCredits:          320,
	PendingCredits:         45,
	PendingPaymentSupports: 18,
	SavingsTransactions:    []float64{12500000, 13250000, 11800000, 14900000, 15320000, 16100000},
	DeactivationRequests:   []float64{3, 5, 2, 4, 6, 1},
}

// Users returns a copy of the user fixtures
func Users() []domain.User {
	return append([]domain.User(nil), users...)
}

// Aportes returns a copy of the contribution fixtures
func Aportes() []domain.Aporte {
	out := make([]domain.Aporte, len(aportes))
	for i, a := range aportes {
		out[i] = a.Clone()
	}
	return out
}

// Cuotas returns a copy of the installment fixtures
func Cuotas() []domain.Cuota {
	return append([]domain.Cuota(nil), cuotas...)
}

// Creditos returns a copy of the credit request fixtures
func Creditos() []domain.Credito {
	return append([]domain.Credito(nil), creditos...)
}

// Dashboard returns a copy of the dashboard aggregate
func Dashboard() domain.DashboardData {
	return dashboard.Clone()
}
