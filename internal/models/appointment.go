package models

import "time"

// Appointment records are created by an external scheduling process and are
// read-only from the client's perspective.
type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID string      `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   UserProfile `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	DateTime time.Time `gorm:"not null" json:"date_time"`
	Status   string    `gorm:"size:20;default:'pending'" json:"status"`
	Price    float64   `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
