package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.UploadSession) error
	Get(ctx context.Context, id string) (*models.UploadSession, error)
	// CompareAndSetState moves the session from one state to another and
	// reports false when the session was not in the expected state.
	CompareAndSetState(ctx context.Context, id string, from, to models.SessionState) (bool, error)
	UpdateState(ctx context.Context, id string, state models.SessionState, reason string) error
	MarkCompleted(ctx context.Context, id string, at time.Time) error
	ListOrphaned(ctx context.Context, staleBefore time.Time) ([]*models.UploadSession, error)
	DeleteTerminalBefore(ctx context.Context, before time.Time) (int64, error)
}
