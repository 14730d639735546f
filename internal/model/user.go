package model

import "time"

// Roles a user can hold. There is no finer-grained permission model:
// Admin manages the catalog, User gets read-only access.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User stores system users with role-based access.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
