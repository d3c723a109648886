package models

import "time"

// Cart is keyed one-to-one by the opaque browser session cookie value.
type Cart struct {
	ID        uint       `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID string     `gorm:"column:session_id;uniqueIndex;not null"`
	UserID    *uint      `gorm:"column:user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
