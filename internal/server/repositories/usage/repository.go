package usage

import (
	"context"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

type Repository interface {
	GetUsage(ctx context.Context, ownerID string) (*models.UsageEntry, error)
	ApplyDelta(ctx context.Context, ownerID string, delta int64) error
	SetQuota(ctx context.Context, ownerID string, quotaBytes int64, bypass bool) error
}
