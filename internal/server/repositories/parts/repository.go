package parts

import (
	"context"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

type Repository interface {
	CreateBatch(ctx context.Context, parts []*models.PartRecord) error
	MarkUploading(ctx context.Context, sessionID string, partNumber int) error
	MarkUploaded(ctx context.Context, sessionID string, partNumber int, tag string, attempts int) error
	MarkFailed(ctx context.Context, sessionID string, partNumber int, attempts int) error
	List(ctx context.Context, sessionID string) ([]*models.PartRecord, error)
}
