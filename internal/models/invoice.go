package models

import "time"

type Invoice struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID string      `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   UserProfile `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Amount  float64 `gorm:"not null" json:"amount"`
	Status  string  `gorm:"size:20;default:'pending'" json:"status"`
	DueDate string  `gorm:"size:10" json:"due_date"`

	// FileKey is the object-storage key of the attached document.
	// Empty when no file was attached or the upload failed.
	FileKey string `gorm:"size:255" json:"file_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
