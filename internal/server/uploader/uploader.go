// Package uploader writes single parts to object storage with bounded,
// exponentially backed-off retries. It holds no session state and is safe
// for concurrent use by a worker pool.
package uploader

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/storage"
)

const (
	DefaultRetries   = 3
	DefaultBaseDelay = time.Second
)

// PartStore is the single storage call the uploader needs.
type PartStore interface {
	UploadPart(ctx context.Context, key, uploadID string, partNumber int, body []byte) (string, error)
}

// PartResult describes a successfully written part.
type PartResult struct {
	PartNumber   int
	IntegrityTag string
	Size         int64
	Attempts     int
}

// Completed converts the result into the form used for multipart completion.
func (r PartResult) Completed() models.CompletedPart {
	return models.CompletedPart{PartNumber: r.PartNumber, IntegrityTag: r.IntegrityTag, Size: r.Size}
}

type Uploader struct {
	store     PartStore
	retries   uint64
	baseDelay time.Duration
	logger    logging.Logger
}

// New builds an Uploader making at most retries+1 attempts per part, waiting
// baseDelay, 2*baseDelay, 4*baseDelay... between them.
func New(store PartStore, retries int, baseDelay time.Duration, l logging.Logger) *Uploader {
	if retries < 0 {
		retries = 0
	}
	if baseDelay <= 0 {
		baseDelay = time.Nanosecond
	}
	return &Uploader{
		store:     store,
		retries:   uint64(retries),
		baseDelay: baseDelay,
		logger:    l.With("module", "uploader"),
	}
}

// UploadPart writes body as part partNumber of the multipart session, making
// at most retries+1 attempts. A backend rejection that storage.IsPermanent
// recognises (an unknown upload id, denied access, a malformed part) is not
// retried: the part fails on that attempt, so its PartUploadError may report
// fewer attempts than the budget. Context cancellation ends retrying the same
// way. Once the part has failed the error is a *models.PartUploadError.
func (u *Uploader) UploadPart(ctx context.Context, sessionID, key string, partNumber int, body []byte) (PartResult, error) {
	var (
		attempts int
		etag     string
	)

	b := retry.WithMaxRetries(u.retries, retry.NewExponential(u.baseDelay))

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempts++

		tag, err := u.store.UploadPart(ctx, key, sessionID, partNumber, body)
		if err == nil {
			etag = tag
			return nil
		}

		if ctx.Err() != nil || storage.IsPermanent(err) {
			return err
		}

		u.logger.Debug(ctx, "part attempt failed", "session_id", sessionID, "part", partNumber, "attempt", attempts, "error", err)
		return retry.RetryableError(err)
	})
	if err != nil {
		return PartResult{Attempts: attempts}, &models.PartUploadError{
			SessionID:  sessionID,
			PartNumber: partNumber,
			Attempts:   attempts,
			Err:        err,
		}
	}

	if attempts > 1 {
		u.logger.Info(ctx, "part uploaded after retries", "session_id", sessionID, "part", partNumber, "attempts", attempts)
	}

	return PartResult{
		PartNumber:   partNumber,
		IntegrityTag: etag,
		Size:         int64(len(body)),
		Attempts:     attempts,
	}, nil
}
