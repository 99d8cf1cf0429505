package services

import (
	"context"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/media"
	"github.com/reelbase-dev/reelbase/internal/models"
)

const categoryFolder = "categories"

type CategoryService struct {
	categories CategoryStore
	uploader   media.Uploader
}

func NewCategoryService(categories CategoryStore, uploader media.Uploader) *CategoryService {
	return &CategoryService{categories: categories, uploader: uploader}
}

// Create uploads the image and then persists the category. Validation happens
// before the upload, so a rejected request never leaves an orphaned asset.
func (s *CategoryService) Create(ctx context.Context, title string, image []byte) (*models.Category, error) {
	var missing []string

	if title == "" {
		missing = append(missing, "title")
	}
	if len(image) == 0 {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}

	asset, err := s.uploader.Upload(ctx, image, categoryFolder)

	if err != nil {
		return nil, &apperrors.UploadError{Err: err}
	}

	category := &models.Category{
		Title:      title,
		ImageURL:   asset.URL,
		ImageAsset: asset.PublicID,
	}

	if err := s.categories.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.All()
}
