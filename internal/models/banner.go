package models

import "gorm.io/gorm"

type Banner struct {
	gorm.Model

	ImageURL string `gorm:"not null"`
	// ImageAsset is the media host's key for the uploaded image. Stored at
	// creation time so deletion can address the remote asset directly.
	ImageAsset string `gorm:"not null"`
}
