package storage

import (
	"context"
	"io"
)

// StorageService stores uploaded image bytes and hands back the public path
// they will be served from.
type StorageService interface {
	SaveImage(ctx context.Context, originalName string, content io.Reader) (publicURL string, err error)
	// ImagePath resolves a stored file name to its on-disk location, or an
	// error if no such file exists.
	ImagePath(name string) (string, error)
}
