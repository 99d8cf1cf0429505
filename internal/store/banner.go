package store

import (
	"errors"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/models"
	"gorm.io/gorm"
)

type BannerStore struct {
	db *gorm.DB
}

func NewBannerStore(db *gorm.DB) *BannerStore {
	return &BannerStore{db: db}
}

func (s *BannerStore) Create(banner *models.Banner) error {
	return s.db.Create(banner).Error
}

func (s *BannerStore) ByID(id uint) (*models.Banner, error) {
	var banner models.Banner

	if err := s.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &banner, nil
}

func (s *BannerStore) All() ([]models.Banner, error) {
	var banners []models.Banner

	if err := s.db.Find(&banners).Error; err != nil {
		return nil, err
	}

	return banners, nil
}

func (s *BannerStore) Delete(id uint) error {
	result := s.db.Delete(&models.Banner{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
