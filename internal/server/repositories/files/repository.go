package files

import (
	"context"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.FileRecord) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.FileRecord, error)
}
