// Package assethost stores product images on an external image host and
// returns their public URLs.
package assethost

import (
	"context"
	"errors"
	"io"
)

var ErrNotConfigured = errors.New("image hosting is not configured")

type UploadResult struct {
	URL      string
	PublicID string
}

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// disabledUploader is used when no credentials are configured: uploads fail,
// deletes are no-ops.
type disabledUploader struct{}

func NewDisabledUploader() Uploader {
	return disabledUploader{}
}

func (disabledUploader) Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	return nil, ErrNotConfigured
}

func (disabledUploader) Delete(ctx context.Context, publicID string) error {
	return nil
}
