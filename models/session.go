package models

import "time"

// UserSession is an opaque bearer token row. A token is valid while
// expires_at is strictly in the future; expired rows are never purged,
// only ignored. A user may hold any number of concurrent sessions.
type UserSession struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       string    `gorm:"index;not null" json:"user_id"`
	SessionToken string    `gorm:"uniqueIndex;not null" json:"session_token"`
	ExpiresAt    time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
