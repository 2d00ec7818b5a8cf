package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TokenType string

const (
	TokenRefresh TokenType = "refresh"
)

// Token stores issued refresh tokens so they can be rotated and revoked.
type Token struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Token       string    `gorm:"uniqueIndex;not null" json:"token"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Type        TokenType `gorm:"type:varchar(10);not null" json:"type"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	Blacklisted bool      `gorm:"not null;default:false" json:"blacklisted"`
	CreatedAt   time.Time `json:"created_at"`
}
