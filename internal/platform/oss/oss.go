package oss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrNotConfigured is returned when uploads are attempted without an endpoint or bucket.
var ErrNotConfigured = errors.New("object storage is not configured")

// Config holds the bucket coordinates and credentials for the object store.
// Endpoint is a host[:port] without scheme.
type Config struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	Region          string
	UseSSL          bool
}

// Uploader puts objects into a single bucket of an S3-compatible store.
type Uploader struct {
	client *minio.Client
	cfg    Config
}

// NewUploader creates an uploader for cfg. No request is made until the first upload.
func NewUploader(cfg Config) (*Uploader, error) {
	if cfg.Endpoint == "" || cfg.BucketName == "" {
		return nil, ErrNotConfigured
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.AccessKeySecret, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	return &Uploader{client: client, cfg: cfg}, nil
}

// Upload stores size bytes from r under objectName and returns the public URL of the object.
func (u *Uploader) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	info, err := u.client.PutObject(ctx, u.cfg.BucketName, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	slog.DebugContext(ctx, "Object uploaded",
		slog.String("bucket", info.Bucket),
		slog.String("object", info.Key),
		slog.Int64("size", info.Size),
	)
	return u.URL(objectName), nil
}

// URL returns the virtual-hosted address of objectName.
func (u *Uploader) URL(objectName string) string {
	scheme := "http"
	if u.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s.%s/%s", scheme, u.cfg.BucketName, u.cfg.Endpoint, objectName)
}

// ObjectName returns a collision-free object name that keeps the extension of originalName.
func ObjectName(originalName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
}
