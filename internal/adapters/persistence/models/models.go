package models

import (
	"time"

	"coop-admin/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Users (socios y personal)
// ============================================================

// User represents users table
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Names          string         `gorm:"size:150;not null" json:"names"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Identification string         `gorm:"uniqueIndex;size:30;not null" json:"identification"`
	ContactData    string         `gorm:"size:255" json:"contact_data"`
	LocationData   string         `gorm:"size:255" json:"location_data"`
	Role           string         `gorm:"size:20;default:'socio';index" json:"role"`
	Status         string         `gorm:"size:20;default:'activo';index" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) ToDomain() domain.User {
	return domain.User{
		ID:             u.ID,
		Names:          u.Names,
		Email:          u.Email,
		Identification: u.Identification,
		ContactData:    u.ContactData,
		LocationData:   u.LocationData,
		Role:           domain.Role(u.Role),
		Status:         domain.UserStatus(u.Status),
	}
}

func (u *User) asociado() domain.AsociadoRef {
	return domain.AsociadoRef{
		ID:                     u.ID,
		Nombres:                u.Names,
		NumeroDeIdentificacion: u.Identification,
	}
}

// UserFromDomain maps a domain user onto a row
func UserFromDomain(u domain.User) *User {
	return &User{
		ID:             u.ID,
		Names:          u.Names,
		Email:          u.Email,
		Identification: u.Identification,
		ContactData:    u.ContactData,
		LocationData:   u.LocationData,
		Role:           string(u.Role),
		Status:         string(u.Status),
	}
}

// ============================================================
// Aportes
// ============================================================

// Aporte represents aportes table
type Aporte struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	AsociadoID        uint            `gorm:"not null;index" json:"asociado_id"`
	FechaAporte       time.Time       `gorm:"not null;index" json:"fecha_aporte"`
	Monto             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monto"`
	TipoAporte        string          `gorm:"size:20;not null" json:"tipo_aporte"`
	MetodoPago        string          `gorm:"size:20;not null" json:"metodo_pago"`
	Estado            bool            `gorm:"default:false;index" json:"estado"`
	Comprobante       *string         `gorm:"size:100" json:"comprobante"`
	Archivo           *string         `gorm:"size:255" json:"archivo"`
	FechaCreacion     time.Time       `gorm:"autoCreateTime" json:"fecha_creacion"`
	FechaModificacion time.Time       `gorm:"autoUpdateTime" json:"fecha_modificacion"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	Asociado *User `gorm:"foreignKey:AsociadoID" json:"asociado,omitempty"`
}

func (Aporte) TableName() string {
	return "aportes"
}

func (a *Aporte) ToDomain() domain.Aporte {
	ref := domain.AsociadoRef{ID: a.AsociadoID}
	if a.Asociado != nil {
		ref = a.Asociado.asociado()
	}
	return domain.Aporte{
		ID:                a.ID,
		FechaAporte:       a.FechaAporte,
		FechaCreacion:     a.FechaCreacion,
		FechaModificacion: a.FechaModificacion,
		Monto:             a.Monto,
		TipoAporte:        domain.TipoAporte(a.TipoAporte),
		MetodoPago:        domain.MetodoPago(a.MetodoPago),
		Estado:            a.Estado,
		Comprobante:       a.Comprobante,
		Asociado:          ref,
		Archivo:           a.Archivo,
	}
}

// AporteFromDomain maps a domain aporte onto a row
func AporteFromDomain(a domain.Aporte) *Aporte {
	return &Aporte{
		ID:                a.ID,
		AsociadoID:        a.Asociado.ID,
		FechaAporte:       a.FechaAporte,
		Monto:             a.Monto,
		TipoAporte:        string(a.TipoAporte),
		MetodoPago:        string(a.MetodoPago),
		Estado:            a.Estado,
		Comprobante:       a.Comprobante,
		Archivo:           a.Archivo,
		FechaCreacion:     a.FechaCreacion,
		FechaModificacion: a.FechaModificacion,
	}
}

// ============================================================
// Creditos y cuotas
// ============================================================

// Credito represents creditos table (solicitudes de crédito)
type Credito struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	AsociadoID     uint            `gorm:"not null;index" json:"asociado_id"`
	Monto          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monto"`
	PlazoMeses     int             `gorm:"not null" json:"plazo_meses"`
	TasaInteres    decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tasa_interes"`
	Estado         string          `gorm:"size:20;default:'PENDIENTE';index" json:"estado"`
	FechaSolicitud time.Time       `gorm:"not null" json:"fecha_solicitud"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	Asociado *User   `gorm:"foreignKey:AsociadoID" json:"asociado,omitempty"`
	Cuotas   []Cuota `gorm:"foreignKey:CreditoID" json:"cuotas,omitempty"`
}

func (Credito) TableName() string {
	return "creditos"
}

func (c *Credito) ToDomain() domain.Credito {
	ref := domain.AsociadoRef{ID: c.AsociadoID}
	if c.Asociado != nil {
		ref = c.Asociado.asociado()
	}
	return domain.Credito{
		ID:             c.ID,
		Asociado:       ref,
		Monto:          c.Monto,
		PlazoMeses:     c.PlazoMeses,
		TasaInteres:    c.TasaInteres,
		Estado:         domain.EstadoCredito(c.Estado),
		FechaSolicitud: c.FechaSolicitud,
	}
}

// CreditoFromDomain maps a domain credito onto a row
func CreditoFromDomain(c domain.Credito) *Credito {
	return &Credito{
		ID:             c.ID,
		AsociadoID:     c.Asociado.ID,
		Monto:          c.Monto,
		PlazoMeses:     c.PlazoMeses,
		TasaInteres:    c.TasaInteres,
		Estado:         string(c.Estado),
		FechaSolicitud: c.FechaSolicitud,
	}
}

// Cuota represents cuotas table
type Cuota struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	CreditoID         uint            `gorm:"not null;index;uniqueIndex:idx_credito_numero" json:"credito_id"`
	NumeroCuota       int             `gorm:"not null;uniqueIndex:idx_credito_numero" json:"numero_cuota"`
	FechaVencimiento  time.Time       `gorm:"not null;index" json:"fecha_vencimiento"`
	Monto             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monto"`
	Mora              decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"mora"`
	TotalPagar        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_pagar"`
	ProteccionCartera decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"proteccion_cartera"`
	AbonoCapital      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"abono_capital"`
	Intereses         decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"intereses"`
	AbonoExtra        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"abono_extra"`
	Estado            string          `gorm:"size:20;default:'PENDIENTE';index" json:"estado"`
	Pagado            bool            `gorm:"default:false" json:"pagado"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Cuota) TableName() string {
	return "cuotas"
}

func (c *Cuota) ToDomain() domain.Cuota {
	return domain.Cuota{
		ID:                c.ID,
		CreditoID:         c.CreditoID,
		NumeroCuota:       c.NumeroCuota,
		FechaVencimiento:  c.FechaVencimiento,
		Monto:             c.Monto,
		Mora:              c.Mora,
		TotalPagar:        c.TotalPagar,
		ProteccionCartera: c.ProteccionCartera,
		AbonoCapital:      c.AbonoCapital,
		Intereses:         c.Intereses,
		AbonoExtra:        c.AbonoExtra,
		Estado:            domain.EstadoCuota(c.Estado),
		Pagado:            c.Pagado,
	}
}

// CuotaFromDomain maps a domain cuota onto a row
func CuotaFromDomain(c domain.Cuota) *Cuota {
	return &Cuota{
		ID:                c.ID,
		CreditoID:         c.CreditoID,
		NumeroCuota:       c.NumeroCuota,
		FechaVencimiento:  c.FechaVencimiento,
		Monto:             c.Monto,
		Mora:              c.Mora,
		TotalPagar:        c.TotalPagar,
		ProteccionCartera: c.ProteccionCartera,
		AbonoCapital:      c.AbonoCapital,
		Intereses:         c.Intereses,
		AbonoExtra:        c.AbonoExtra,
		Estado:            string(c.Estado),
		Pagado:            c.Pagado,
	}
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Credito{},
		&Cuota{},
		&Aporte{},
	)
}
