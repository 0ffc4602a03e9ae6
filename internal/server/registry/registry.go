// Package registry is the durable record of upload sessions, their parts and
// the files they produce. Confirmation is idempotent and is the only place the
// usage ledger is debited.
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/repomanager"
)

type Registry struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
	now    func() time.Time
	newID  func() string
}

func New(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *Registry {
	return &Registry{
		db:     db,
		repos:  repos,
		logger: logger.With("module", "registry"),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// PendingParts builds one pending record per part of the session.
func PendingParts(s *models.UploadSession) []*models.PartRecord {
	parts := make([]*models.PartRecord, 0, s.TotalParts)
	for n := 1; n <= s.TotalParts; n++ {
		parts = append(parts, &models.PartRecord{
			SessionID:  s.ID,
			PartNumber: n,
			Size:       s.PartSize(n),
			Status:     models.PartPending,
		})
	}
	return parts
}

// Record persists a new session together with its part rows.
func (r *Registry) Record(ctx context.Context, s *models.UploadSession, parts []*models.PartRecord) error {
	if len(parts) != s.TotalParts {
		return fmt.Errorf("%w: %d part rows for %d parts", common.ErrInvalidInput, len(parts), s.TotalParts)
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.repos.Sessions(tx).Create(ctx, s); err != nil {
			return fmt.Errorf("error creating session: %w", err)
		}
		if err := r.repos.Parts(tx).CreateBatch(ctx, parts); err != nil {
			return fmt.Errorf("error creating parts: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info(ctx, "session recorded", "session_id", s.ID, "owner_id", s.OwnerID, "parts", s.TotalParts)
	return nil
}

func (r *Registry) Get(ctx context.Context, sessionID string) (*models.UploadSession, error) {
	return r.repos.Sessions(r.db).Get(ctx, sessionID)
}

func (r *Registry) Parts(ctx context.Context, sessionID string) ([]*models.PartRecord, error) {
	return r.repos.Parts(r.db).List(ctx, sessionID)
}

// File returns the file produced by a session, or common.ErrorNotFound.
func (r *Registry) File(ctx context.Context, sessionID string) (*models.FileRecord, error) {
	return r.repos.Files(r.db).GetBySessionID(ctx, sessionID)
}

// StartRun claims a planned session for execution. It reports false when the
// session is not planned anymore.
func (r *Registry) StartRun(ctx context.Context, sessionID string) (bool, error) {
	return r.repos.Sessions(r.db).CompareAndSetState(ctx, sessionID, models.SessionPlanned, models.SessionInProgress)
}

// MarkState moves a non-completed session to state. reason is kept for
// failed and aborted sessions.
func (r *Registry) MarkState(ctx context.Context, sessionID string, state models.SessionState, reason string) error {
	if state == models.SessionCompleted {
		return fmt.Errorf("%w: sessions complete through Confirm", common.ErrInvalidInput)
	}
	if err := r.repos.Sessions(r.db).UpdateState(ctx, sessionID, state, reason); err != nil {
		return err
	}
	r.logger.Debug(ctx, "session state changed", "session_id", sessionID, "state", state)
	return nil
}

func (r *Registry) MarkPartUploading(ctx context.Context, sessionID string, partNumber int) error {
	return r.repos.Parts(r.db).MarkUploading(ctx, sessionID, partNumber)
}

func (r *Registry) MarkPartUploaded(ctx context.Context, sessionID string, partNumber int, tag string, attempts int) error {
	return r.repos.Parts(r.db).MarkUploaded(ctx, sessionID, partNumber, tag, attempts)
}

func (r *Registry) MarkPartFailed(ctx context.Context, sessionID string, partNumber int, attempts int) error {
	return r.repos.Parts(r.db).MarkFailed(ctx, sessionID, partNumber, attempts)
}

// Confirm records the assembled object for a session whose remote completion
// succeeded. In one transaction it stores the file, marks every part uploaded,
// completes the session and debits the ledger by the confirmed byte count.
// Confirming an already confirmed session returns the existing file and
// leaves the ledger alone.
func (r *Registry) Confirm(ctx context.Context, sessionID string, parts []models.CompletedPart, location, etag string) (*models.FileRecord, error) {
	var file *models.FileRecord

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		existing, err := r.repos.Files(tx).GetBySessionID(ctx, sessionID)
		if err == nil {
			file = existing
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error reading file: %w", err)
		}

		s, err := r.repos.Sessions(tx).Get(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("error reading session: %w", err)
		}
		if s.State == models.SessionAborted || s.State == models.SessionFailed {
			return fmt.Errorf("%w: session %s is %s", common.ErrSessionTerminal, sessionID, s.State)
		}

		sorted, confirmed, err := confirmedBytes(s, parts)
		if err != nil {
			return err
		}

		partsRepo := r.repos.Parts(tx)
		records, err := partsRepo.List(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("error listing parts: %w", err)
		}
		for _, rec := range records {
			if rec.Status == models.PartUploaded {
				continue
			}
			p := sorted[rec.PartNumber-1]
			if err := partsRepo.MarkUploaded(ctx, sessionID, rec.PartNumber, p.IntegrityTag, max(rec.Attempts, 1)); err != nil {
				return fmt.Errorf("error marking part %d: %w", rec.PartNumber, err)
			}
		}

		now := r.now()
		file = &models.FileRecord{
			ID:          r.newID(),
			SessionID:   sessionID,
			OwnerID:     s.OwnerID,
			Key:         s.TargetKey,
			Kind:        s.Kind,
			ContentType: s.ContentType,
			Size:        confirmed,
			Location:    location,
			ETag:        etag,
			CreatedAt:   now,
		}
		if err := r.repos.Files(tx).Create(ctx, file); err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}
		if err := r.repos.Sessions(tx).MarkCompleted(ctx, sessionID, now); err != nil {
			return fmt.Errorf("error completing session: %w", err)
		}
		if err := r.repos.Usage(tx).ApplyDelta(ctx, s.OwnerID, confirmed); err != nil {
			return fmt.Errorf("error applying usage: %w", err)
		}
		return nil
	})

	if dbx.IsUniqueViolation(err) {
		// A concurrent Confirm won the insert; its record is the answer.
		return r.File(ctx, sessionID)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Info(ctx, "session confirmed", "session_id", sessionID, "file_id", file.ID, "size", file.Size)
	return file, nil
}

// confirmedBytes checks that parts cover 1..TotalParts exactly once and
// returns them sorted along with their total size. Parts without a size take
// the planned one.
func confirmedBytes(s *models.UploadSession, parts []models.CompletedPart) ([]models.CompletedPart, int64, error) {
	if len(parts) != s.TotalParts {
		return nil, 0, fmt.Errorf("%w: %d parts confirmed, session has %d", common.ErrInvalidInput, len(parts), s.TotalParts)
	}

	sorted := make([]models.CompletedPart, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PartNumber < sorted[j].PartNumber })

	var total int64
	for i := range sorted {
		if sorted[i].PartNumber != i+1 {
			return nil, 0, fmt.Errorf("%w: part %d missing", common.ErrInvalidInput, i+1)
		}
		if sorted[i].Size <= 0 {
			sorted[i].Size = s.PartSize(sorted[i].PartNumber)
		}
		total += sorted[i].Size
	}
	return sorted, total, nil
}

// FindOrphaned lists sessions idle for longer than olderThan plus failed
// sessions still waiting for their remote abort.
func (r *Registry) FindOrphaned(ctx context.Context, olderThan time.Duration) ([]*models.UploadSession, error) {
	return r.repos.Sessions(r.db).ListOrphaned(ctx, r.now().Add(-olderThan))
}

// Purge removes completed and aborted sessions last touched before the cutoff.
func (r *Registry) Purge(ctx context.Context, before time.Time) (int64, error) {
	n, err := r.repos.Sessions(r.db).DeleteTerminalBefore(ctx, before)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Info(ctx, "sessions purged", "count", n, "before", before)
	}
	return n, nil
}
