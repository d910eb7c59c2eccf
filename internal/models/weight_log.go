package models

import "time"

// WeightLog is a single dated body-weight measurement. Append-only:
// the portal never updates or deletes entries.
type WeightLog struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID string `gorm:"type:uuid;index;not null" json:"client_id"`

	Weight float64 `gorm:"not null" json:"weight"`
	Date   string  `gorm:"size:10;not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
