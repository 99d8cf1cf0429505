package media

import "context"

// Asset identifies an image accepted by the media host.
type Asset struct {
	URL      string // publicly addressable URL
	PublicID string // remote key usable for later deletion
}

// Uploader is the media-host integration used by the entity services. Upload
// sends a raw image buffer and returns its public address; Destroy removes a
// previously uploaded asset by its stored key.
type Uploader interface {
	Upload(ctx context.Context, buf []byte, folder string) (Asset, error)
	Destroy(ctx context.Context, publicID string) error
}
