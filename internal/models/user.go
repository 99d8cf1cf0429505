package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name         string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"`   // "admin" or "user"
	Status       string `gorm:"not null;default:active"` // "active", "pending", "inactive"
}
