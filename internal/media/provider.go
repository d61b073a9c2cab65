package media

import (
	"context"
	"errors"
	"io"
)

// MaxImagesPerProduct caps how many images a product may carry.
const MaxImagesPerProduct = 7

// Provider is the external image host. Uploads are synchronous and
// per-file; multi-file batches are the caller's loop, sequential, with no
// rollback of files already uploaded when a later one fails.
type Provider interface {
	// Upload stores one file under folder and returns its stable URL.
	Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error)
	// DeleteFolder removes every asset under the folder prefix. Best-effort:
	// callers log failures and move on.
	DeleteFolder(ctx context.Context, folder string) error
}

var ErrNotConfigured = errors.New("media host not configured")

// NoOpProvider satisfies Provider when no media host is configured.
type NoOpProvider struct{}

func (p *NoOpProvider) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	return "", ErrNotConfigured
}

func (p *NoOpProvider) DeleteFolder(ctx context.Context, folder string) error {
	return nil
}
