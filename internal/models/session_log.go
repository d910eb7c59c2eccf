package models

import "time"

// SessionLog is a write-once audit record created at logout, capturing the
// moment and the client's last known weight. Read back only by the admin
// overview. Rows are removed together with the profile they reference.
type SessionLog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string      `gorm:"type:uuid;index;not null" json:"user_id"`
	User   UserProfile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	LogoutTime time.Time `gorm:"not null" json:"logout_time"`
	LastWeight *float64  `json:"last_weight"`

	CreatedAt time.Time `json:"created_at"`
}

func (SessionLog) TableName() string { return "user_sessions" }
