package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model

	Title string `gorm:"not null"`
	// ImageURL is only ever written after the media host accepted the upload.
	ImageURL   string `gorm:"not null"`
	ImageAsset string `gorm:"not null"` // remote asset key returned by the media host
}
