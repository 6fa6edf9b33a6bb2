package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	portssvc "github.com/SscSPs/sky_take_out/internal/core/ports/services"
	"github.com/SscSPs/sky_take_out/internal/platform/oss"
)

// ObjectStore is the part of the object storage client the upload service needs.
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
}

type UploadService struct {
	BaseService
	store ObjectStore
}

var _ portssvc.UploadSvc = (*UploadService)(nil)

func NewUploadService(store ObjectStore) *UploadService {
	return &UploadService{store: store}
}

// Upload stores the file under a fresh object name and returns its URL.
func (s *UploadService) Upload(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (string, error) {
	if originalName == "" || size <= 0 {
		return "", fmt.Errorf("empty upload: %w", apperrors.ErrValidation)
	}
	objectName := oss.ObjectName(originalName)
	url, err := s.store.Upload(ctx, objectName, r, size, contentType)
	if err != nil {
		s.LogError(ctx, err, "File upload failed", slog.String("file", originalName))
		return "", err
	}
	s.LogInfo(ctx, "File uploaded", slog.String("file", originalName), slog.String("url", url))
	return url, nil
}
