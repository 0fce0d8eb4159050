package repositories

import "gorm.io/gorm"

// NewGormSet wires every repository against one connection
func NewGormSet(db *gorm.DB) *Set {
	return &Set{
		Users:    NewUserRepository(db),
		Aportes:  NewAporteRepository(db),
		Cuotas:   NewCuotaRepository(db),
		Creditos: NewCreditoRepository(db),
	}
}
