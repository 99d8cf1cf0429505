package store

import (
	"errors"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/models"
	"gorm.io/gorm"
)

type MovieStore struct {
	db *gorm.DB
}

func NewMovieStore(db *gorm.DB) *MovieStore {
	return &MovieStore{db: db}
}

func (s *MovieStore) Create(movie *models.Movie) error {
	return s.db.Create(movie).Error
}

func (s *MovieStore) ByID(id uint) (*models.Movie, error) {
	var movie models.Movie

	if err := s.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &movie, nil
}

func (s *MovieStore) All() ([]models.Movie, error) {
	var movies []models.Movie

	if err := s.db.Find(&movies).Error; err != nil {
		return nil, err
	}

	return movies, nil
}

func (s *MovieStore) Update(movie *models.Movie) error {
	return s.db.Save(movie).Error
}

func (s *MovieStore) Delete(id uint) error {
	result := s.db.Delete(&models.Movie{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
