// Package storage adapts an S3-compatible backend to the multipart contract
// the upload engine needs.
package storage

import (
	"context"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

// ObjectStore is the object-storage backend as seen by the upload engine.
// Credentials never leave implementations of this interface.
type ObjectStore interface {
	CreateMultipartUpload(ctx context.Context, key, contentType string, metadata map[string]string) (uploadID string, err error)
	UploadPart(ctx context.Context, key, uploadID string, partNumber int, body []byte) (etag string, err error)
	CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []models.CompletedPart) (location, etag string, err error)
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
