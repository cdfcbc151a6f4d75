package model

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the game persists.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&SaveSlot{},
		&EventLog{},
	)
}
