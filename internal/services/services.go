// Package services holds the auth and entity services. Each service validates
// its input, orchestrates the media upload when one is involved, and talks to
// its store; it reports failures through the apperrors taxonomy and leaves
// HTTP concerns to the handlers.
package services

import "github.com/reelbase-dev/reelbase/internal/models"

// Store contracts are declared here, where they are consumed. The gorm
// implementations live in internal/store; tests substitute in-memory fakes.

type UserStore interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	NameOrEmailTaken(name, email string, excludeID uint) (bool, error)
	All() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

type CategoryStore interface {
	Create(category *models.Category) error
	ByID(id uint) (*models.Category, error)
	All() ([]models.Category, error)
}

type BannerStore interface {
	Create(banner *models.Banner) error
	ByID(id uint) (*models.Banner, error)
	All() ([]models.Banner, error)
	Delete(id uint) error
}

type MovieStore interface {
	Create(movie *models.Movie) error
	ByID(id uint) (*models.Movie, error)
	All() ([]models.Movie, error)
	Update(movie *models.Movie) error
	Delete(id uint) error
}
