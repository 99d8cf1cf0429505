package store

import (
	"errors"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/models"
	"gorm.io/gorm"
)

type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) Create(category *models.Category) error {
	return s.db.Create(category).Error
}

func (s *CategoryStore) ByID(id uint) (*models.Category, error) {
	var category models.Category

	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &category, nil
}

func (s *CategoryStore) All() ([]models.Category, error) {
	var categories []models.Category

	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}
