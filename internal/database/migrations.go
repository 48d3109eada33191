package database

import (
	"github.com/chachabrian/rentacar-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Car{},
		&models.Booking{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	// An earlier schema shipped without 'pending' in the status constraint.
	// Re-assert the full lifecycle so old databases accept all three states.
	if db.Dialector.Name() == "postgres" && db.Migrator().HasTable(&models.Booking{}) {
		db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_status_check`)
		if err := db.Exec(`ALTER TABLE bookings ADD CONSTRAINT bookings_status_check CHECK (status IN ('pending', 'confirmed', 'cancelled'))`).Error; err != nil {
			return err
		}
	}

	return nil
}
