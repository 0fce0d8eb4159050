package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Montos travel as JSON numbers, the front-end never sees quoted amounts.
	decimal.MarshalJSONWithoutQuotes = true
}

// Role represents user role in the cooperative
type Role string

const (
	RoleSocio         Role = "socio"
	RoleAdministrador Role = "administrador"
	RoleGestor        Role = "gestor"
)

// Valid reports whether r is one of the enumerated roles
func (r Role) Valid() bool {
	switch r {
	case RoleSocio, RoleAdministrador, RoleGestor:
		return true
	}
	return false
}

// UserStatus represents whether a member account is active
type UserStatus string

const (
	StatusActivo   UserStatus = "activo"
	StatusInactivo UserStatus = "inactivo"
)

func (s UserStatus) Valid() bool {
	return s == StatusActivo || s == StatusInactivo
}

// User represents a cooperative user (socio or staff)
type User struct {
	ID             uint       `json:"id" validate:"required"`
	Names          string     `json:"names" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	Identification string     `json:"identification" validate:"required"`
	ContactData    string     `json:"contactData"`
	LocationData   string     `json:"locationData"`
	Role           Role       `json:"role" validate:"required,oneof=socio administrador gestor"`
	Status         UserStatus `json:"status" validate:"required,oneof=activo inactivo"`
}

// TipoAporte is the kind of contribution
type TipoAporte string

const (
	TipoMensual        TipoAporte = "MENSUAL"
	TipoAnual          TipoAporte = "ANUAL"
	TipoExtraordinario TipoAporte = "EXTRAORDINARIO"
)

func (t TipoAporte) Valid() bool {
	switch t {
	case TipoMensual, TipoAnual, TipoExtraordinario:
		return true
	}
	return false
}

// MetodoPago is how a contribution was paid
type MetodoPago string

const (
	MetodoEfectivo      MetodoPago = "EFECTIVO"
	MetodoTransferencia MetodoPago = "TRANSFERENCIA"
	MetodoTarjeta       MetodoPago = "TARJETA"
)

func (m MetodoPago) Valid() bool {
	switch m {
	case MetodoEfectivo, MetodoTransferencia, MetodoTarjeta:
		return true
	}
	return false
}

// AsociadoRef is the embedded member reference carried by aportes and creditos
type AsociadoRef struct {
	ID                     uint   `json:"id" validate:"required"`
	Nombres                string `json:"nombres"`
	NumeroDeIdentificacion string `json:"numeroDeIdentificacion"`
}

// Aporte represents a member contribution
type Aporte struct {
	ID                uint            `json:"id" validate:"required"`
	FechaAporte       time.Time       `json:"fechaAporte"`
	FechaCreacion     time.Time       `json:"fechaCreacion"`
	FechaModificacion time.Time       `json:"fechaModificacion"`
	Monto             decimal.Decimal `json:"monto"`
	TipoAporte        TipoAporte      `json:"tipoAporte" validate:"required,oneof=MENSUAL ANUAL EXTRAORDINARIO"`
	MetodoPago        MetodoPago      `json:"metodoPago" validate:"required,oneof=EFECTIVO TRANSFERENCIA TARJETA"`
	Estado            bool            `json:"estado"`
	Comprobante       *string         `json:"comprobante"`
	Asociado          AsociadoRef     `json:"asociado"`
	Archivo           *string         `json:"archivo,omitempty"`
}

// Clone returns a copy that shares no pointers with a
func (a Aporte) Clone() Aporte {
	out := a
	if a.Comprobante != nil {
		v := *a.Comprobante
		out.Comprobante = &v
	}
	if a.Archivo != nil {
		v := *a.Archivo
		out.Archivo = &v
	}
	return out
}

// MontoNonNegative is advisory, nothing rejects a negative monto on read
func (a *Aporte) MontoNonNegative() bool {
	return !a.Monto.IsNegative()
}

// EstadoCuota is the payment state of an installment
type EstadoCuota string

const (
	CuotaPendiente EstadoCuota = "PENDIENTE"
	CuotaPagado    EstadoCuota = "PAGADO"
)

func (e EstadoCuota) Valid() bool {
	return e == CuotaPendiente || e == CuotaPagado
}

// Cuota represents a loan installment
type Cuota struct {
	ID                uint            `json:"id" validate:"required"`
	CreditoID         uint            `json:"creditoId,omitempty"`
	NumeroCuota       int             `json:"numeroCuota" validate:"gte=1"`
	FechaVencimiento  time.Time       `json:"fechaVencimiento"`
	Monto             decimal.Decimal `json:"monto"`
	Mora              decimal.Decimal `json:"mora"`
	TotalPagar        decimal.Decimal `json:"totalPagar"`
	ProteccionCartera decimal.Decimal `json:"proteccionCartera"`
	AbonoCapital      decimal.Decimal `json:"abonoCapital"`
	Intereses         decimal.Decimal `json:"intereses"`
	AbonoExtra        decimal.Decimal `json:"abonoExtra"`
	Estado            EstadoCuota     `json:"estado" validate:"required,oneof=PENDIENTE PAGADO"`
	Pagado            bool            `json:"pagado"`
}

// Components returns the sum totalPagar is expected to equal
func (c *Cuota) Components() decimal.Decimal {
	return c.Monto.Add(c.Mora).Add(c.ProteccionCartera).Add(c.AbonoExtra)
}

// TotalMatchesComponents is advisory
func (c *Cuota) TotalMatchesComponents() bool {
	return c.TotalPagar.Equal(c.Components())
}

// EstadoConsistent reports whether estado and pagado agree
func (c *Cuota) EstadoConsistent() bool {
	return (c.Estado == CuotaPagado) == c.Pagado
}

// EstadoCredito is the lifecycle state of a credit request
type EstadoCredito string

const (
	CreditoPendiente EstadoCredito = "PENDIENTE"
	CreditoAprobado  EstadoCredito = "APROBADO"
	CreditoRechazado EstadoCredito = "RECHAZADO"
	CreditoActivo    EstadoCredito = "ACTIVO"
	CreditoCancelado EstadoCredito = "CANCELADO"
)

func (e EstadoCredito) Valid() bool {
	switch e {
	case CreditoPendiente, CreditoAprobado, CreditoRechazado, CreditoActivo, CreditoCancelado:
		return true
	}
	return false
}

// Credito represents a credit request
type Credito struct {
	ID             uint            `json:"id" validate:"required"`
	Asociado       AsociadoRef     `json:"asociado"`
	Monto          decimal.Decimal `json:"monto"`
	PlazoMeses     int             `json:"plazoMeses" validate:"gte=1"`
	TasaInteres    decimal.Decimal `json:"tasaInteres"`
	Estado         EstadoCredito   `json:"estado" validate:"required,oneof=PENDIENTE APROBADO RECHAZADO ACTIVO CANCELADO"`
	FechaSolicitud time.Time       `json:"fechaSolicitud"`
}

// DashboardData is the admin dashboard aggregate.
// The series hold one number per month, oldest first.
type DashboardData struct {
	TotalUsers             int64     `json:"totalUsers"`
	ActiveCredits          int64     `json:"activeCredits"`
	PendingCredits         int64     `json:"pendingCredits"`
	PendingPaymentSupports int64     `json:"pendingPaymentSupports"`
	SavingsTransactions    []float64 `json:"savingsTransactions"`
	DeactivationRequests   []float64 `json:"deactivationRequests"`
}

// Clone returns a deep copy so callers never share the series slices
func (d DashboardData) Clone() DashboardData {
	out := d
	out.SavingsTransactions = append([]float64{}, d.SavingsTransactions...)
	out.DeactivationRequests = append([]float64{}, d.DeactivationRequests...)
	return out
}
