package services

import (
	"context"
	"io"
)

// UploadSvc stores user supplied files and returns their public URL.
type UploadSvc interface {
	Upload(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error)
}
