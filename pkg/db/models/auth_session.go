package models

import "time"

// AuthSession is an opaque login token row. Deleted on logout; rows past
// ExpiresAt are treated as absent by lookups.
type AuthSession struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uint      `gorm:"column:user_id;not null;index"`
	Token     string    `gorm:"column:token;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the historical table name.
func (AuthSession) TableName() string { return "sessions" }
