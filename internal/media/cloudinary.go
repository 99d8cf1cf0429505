package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryUploader uploads image buffers to Cloudinary. Asset keys are
// generated here rather than left to the host, so the key stored alongside a
// record is always the one the remote asset actually lives under.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryUploader(credentialsURL string) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(credentialsURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary credentials: %w", err)
	}
	return &CloudinaryUploader{client: client}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, buf []byte, folder string) (Asset, error) {
	publicID := uuid.NewString()

	resp, err := u.client.Upload.Upload(ctx, bytes.NewReader(buf), uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})

	if err != nil {
		return Asset{}, err
	}

	if resp.Error.Message != "" {
		return Asset{}, fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}

	return Asset{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	resp, err := u.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})

	if err != nil {
		return err
	}

	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Result)
	}

	return nil
}
