package models

import "gorm.io/gorm"

type Movie struct {
	gorm.Model

	Title       string `gorm:"not null"`
	PosterURL   string
	PosterAsset string
	YoutubeLink string `gorm:"not null"`
	UploadLink  string `gorm:"not null"`
	Status      string `gorm:"not null;default:active"` // "active", "pending", "inactive"
	// Category is a soft reference: the store does not guarantee the
	// referenced category still exists.
	Category string `gorm:"not null"`
}
