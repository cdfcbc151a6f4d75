package model

import (
	"time"

	"gorm.io/datatypes"
)

// EventLog is one dispatched game event, kept as an audit trail.
type EventLog struct {
	ID         uint           `gorm:"primaryKey"`
	TraceID    string         `gorm:"size:64;index"`
	EventType  string         `gorm:"size:32;index;not null"`
	Payload    datatypes.JSON `gorm:""`
	Message    string         `gorm:"size:255"`
	Error      string         `gorm:"size:255"`
	DurationMs int
	CreatedAt  time.Time
}
