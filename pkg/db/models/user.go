package models

import "time"

// User is the canonical identity entity. PasswordHash never leaves the
// persistence layer; transport shapes live in internal/users.
type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;type:text;not null;uniqueIndex:users_email_key"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
