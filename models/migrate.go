package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the four scheduling tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Vehicle{},
		&Service{},
		&Appointment{},
	)
}
