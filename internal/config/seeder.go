package config

import (
	"coop-admin/internal/adapters/persistence/models"
	"coop-admin/internal/core/mockdata"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder loads the development fixtures into MySQL
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Only an empty users table is seeded, so real
// data is never touched.
func (s *Seeder) Run() error {
	log := Logger()
	log.Info("🌱 Running database seeders...")

	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.WithField("users", count).Info("⏭️ Seed skipped: users table is not empty")
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range mockdata.Users() {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(models.UserFromDomain(u)).Error; err != nil {
				return err
			}
		}
		for _, c := range mockdata.Creditos() {
			if err := tx.Create(models.CreditoFromDomain(c)).Error; err != nil {
				return err
			}
		}
		for _, c := range mockdata.Cuotas() {
			if err := tx.Create(models.CuotaFromDomain(c)).Error; err != nil {
				return err
			}
		}
		for _, a := range mockdata.Aportes() {
			if err := tx.Create(models.AporteFromDomain(a)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("✅ Database seeding completed")
	return nil
}
