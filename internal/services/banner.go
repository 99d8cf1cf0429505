package services

import (
	"context"
	"log"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/media"
	"github.com/reelbase-dev/reelbase/internal/models"
)

const bannerFolder = "banners"

type BannerService struct {
	banners  BannerStore
	uploader media.Uploader
}

func NewBannerService(banners BannerStore, uploader media.Uploader) *BannerService {
	return &BannerService{banners: banners, uploader: uploader}
}

func (s *BannerService) Create(ctx context.Context, image []byte) (*models.Banner, error) {
	if len(image) == 0 {
		return nil, apperrors.MissingFields("image")
	}

	asset, err := s.uploader.Upload(ctx, image, bannerFolder)

	if err != nil {
		return nil, &apperrors.UploadError{Err: err}
	}

	banner := &models.Banner{
		ImageURL:   asset.URL,
		ImageAsset: asset.PublicID,
	}

	if err := s.banners.Create(banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (s *BannerService) List() ([]models.Banner, error) {
	return s.banners.All()
}

func (s *BannerService) Get(id uint) (*models.Banner, error) {
	return s.banners.ByID(id)
}

// Delete removes the banner row and, best-effort, the remote asset recorded
// at creation time. A media-host failure is logged and does not block the
// local delete.
func (s *BannerService) Delete(ctx context.Context, id uint) error {
	banner, err := s.banners.ByID(id)

	if err != nil {
		return err
	}

	if banner.ImageAsset != "" {
		if err := s.uploader.Destroy(ctx, banner.ImageAsset); err != nil {
			log.Printf("Failed to delete banner asset %s: %v", banner.ImageAsset, err)
		}
	}

	return s.banners.Delete(id)
}
