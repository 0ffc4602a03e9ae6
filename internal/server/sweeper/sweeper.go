// Package sweeper periodically cleans up sessions nobody is driving anymore:
// it aborts their backend uploads and purges terminal sessions past retention.
// A session left in completing may already have its object assembled; such a
// session is confirmed rather than aborted.
package sweeper

import (
	"context"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

type Registry interface {
	FindOrphaned(ctx context.Context, olderThan time.Duration) ([]*models.UploadSession, error)
	MarkState(ctx context.Context, sessionID string, state models.SessionState, reason string) error
	Purge(ctx context.Context, before time.Time) (int64, error)
	Parts(ctx context.Context, sessionID string) ([]*models.PartRecord, error)
	Confirm(ctx context.Context, sessionID string, parts []models.CompletedPart, location, etag string) (*models.FileRecord, error)
}

// Backend is the slice of object storage the sweeper needs.
type Backend interface {
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error
	UploadOpen(ctx context.Context, key, uploadID string) (bool, error)
	StatObject(ctx context.Context, key string) (models.ObjectInfo, bool, error)
}

// RunTracker tells the sweeper which sessions are driven by this process.
type RunTracker interface {
	IsRunning(sessionID string) bool
}

type Config struct {
	Interval   time.Duration
	StaleAfter time.Duration
	Retention  time.Duration
}

// Report summarises one sweep.
type Report struct {
	Aborted   int
	Confirmed int
	Failed    int
	Skipped   int
	Purged    int64
}

type Sweeper struct {
	registry Registry
	backend  Backend
	runs     RunTracker
	cfg      Config
	logger   logging.Logger
	now      func() time.Time
}

const defaultInterval = 10 * time.Minute

func New(r Registry, backend Backend, runs RunTracker, cfg Config, logger logging.Logger) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	return &Sweeper{
		registry: r,
		backend:  backend,
		runs:     runs,
		cfg:      cfg,
		logger:   logger.With("module", "sweeper"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run sweeps every Interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error(ctx, "sweep failed", "error", err)
			}
		}
	}
}

// Sweep aborts orphaned sessions and purges expired terminal ones. A session
// whose abort fails is kept failed and retried on the next sweep. A completing
// session whose upload the backend already assembled is confirmed instead.
func (s *Sweeper) Sweep(ctx context.Context) (Report, error) {
	var rep Report

	orphans, err := s.registry.FindOrphaned(ctx, s.cfg.StaleAfter)
	if err != nil {
		return rep, err
	}

	for _, o := range orphans {
		if ctx.Err() != nil {
			return rep, ctx.Err()
		}
		if s.runs != nil && s.runs.IsRunning(o.ID) {
			rep.Skipped++
			continue
		}

		if o.State == models.SessionCompleting {
			confirmed, err := s.reconcile(ctx, o)
			if err != nil {
				rep.Failed++
				s.logger.Warn(ctx, "completing session not reconciled", "session_id", o.ID, "error", err)
				continue
			}
			if confirmed {
				rep.Confirmed++
				continue
			}
		}

		if err := s.backend.AbortMultipartUpload(ctx, o.TargetKey, o.ID); err != nil {
			rep.Failed++
			s.logger.Warn(ctx, "orphan abort failed", "session_id", o.ID, "state", o.State, "error", err)
			if o.State != models.SessionFailed {
				if merr := s.registry.MarkState(ctx, o.ID, models.SessionFailed, "sweeper: "+err.Error()); merr != nil {
					s.logger.Warn(ctx, "session state not saved", "session_id", o.ID, "error", merr)
				}
			}
			continue
		}

		reason := "sweeper: stale " + string(o.State)
		if o.FailureReason != "" {
			reason = o.FailureReason
		}
		if err := s.registry.MarkState(ctx, o.ID, models.SessionAborted, reason); err != nil {
			s.logger.Warn(ctx, "session state not saved", "session_id", o.ID, "error", err)
			continue
		}
		rep.Aborted++
	}

	if s.cfg.Retention > 0 {
		n, err := s.registry.Purge(ctx, s.now().Add(-s.cfg.Retention))
		if err != nil {
			return rep, err
		}
		rep.Purged = n
	}

	if rep.Aborted+rep.Confirmed+rep.Failed+int(rep.Purged) > 0 {
		s.logger.Info(ctx, "sweep finished", "aborted", rep.Aborted, "confirmed", rep.Confirmed, "failed", rep.Failed, "skipped", rep.Skipped, "purged", rep.Purged)
	}
	return rep, nil
}

// reconcile settles a session that stalled after completion was requested.
// If the backend still holds the upload open, completion never happened and
// the caller aborts it. If the upload is gone and an object of the session's
// size sits at its key, completion succeeded and the session is confirmed
// from its part records so the owner is charged for it.
func (s *Sweeper) reconcile(ctx context.Context, o *models.UploadSession) (bool, error) {
	open, err := s.backend.UploadOpen(ctx, o.TargetKey, o.ID)
	if err != nil || open {
		return false, err
	}

	info, found, err := s.backend.StatObject(ctx, o.TargetKey)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if info.Size != o.TotalBytes {
		s.logger.Warn(ctx, "object at session key has a different size", "session_id", o.ID, "key", o.TargetKey, "size", info.Size, "expected", o.TotalBytes)
		return false, nil
	}

	records, err := s.registry.Parts(ctx, o.ID)
	if err != nil {
		return false, err
	}
	parts := make([]models.CompletedPart, len(records))
	for i, rec := range records {
		parts[i] = models.CompletedPart{PartNumber: rec.PartNumber, IntegrityTag: rec.IntegrityTag, Size: rec.Size}
	}

	if _, err := s.registry.Confirm(ctx, o.ID, parts, info.Location, info.ETag); err != nil {
		return false, err
	}
	s.logger.Info(ctx, "completing session confirmed", "session_id", o.ID, "size", info.Size)
	return true, nil
}
