package model

import (
	"time"

	"gorm.io/datatypes"
)

// SaveSlot is one persisted save envelope, keyed by slot name.
type SaveSlot struct {
	ID        uint           `gorm:"primaryKey"`
	SlotKey   string         `gorm:"uniqueIndex;size:128;not null"`
	Data      datatypes.JSON `gorm:"not null"`
	Version   string         `gorm:"size:32;not null"`
	SaveTime  time.Time      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
