package models

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// UserProfile is the portal-level user record. Its ID is the owning
// AuthUser's ID: exactly one profile per authenticated identity.
type UserProfile struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	FullName  string `gorm:"size:100;not null" json:"full_name"`
	Email     string `gorm:"size:100;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Address   string `gorm:"size:255" json:"address"`
	BirthDate string `gorm:"size:10" json:"birth_date"`

	Role Role `gorm:"size:20;default:'client'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }
