// Package orchestrator drives one upload session from its backend handle to a
// confirmed file: parts go out in ascending batches of WorkerCount, and any
// failure ends in exactly one remote abort.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/registry"
	"github.com/dmitrijs2005/assetkeeper/internal/server/uploader"
)

const (
	confirmRetries   = 3
	confirmBaseDelay = 200 * time.Millisecond
)

var errAbortedByCaller = errors.New("aborted by caller")

// Backend is the session-level part of the object store.
type Backend interface {
	CreateMultipartUpload(ctx context.Context, key, contentType string, metadata map[string]string) (string, error)
	CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []models.CompletedPart) (string, string, error)
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error
}

type PartUploader interface {
	UploadPart(ctx context.Context, sessionID, key string, partNumber int, body []byte) (uploader.PartResult, error)
}

type Registry interface {
	Record(ctx context.Context, s *models.UploadSession, parts []*models.PartRecord) error
	Get(ctx context.Context, sessionID string) (*models.UploadSession, error)
	File(ctx context.Context, sessionID string) (*models.FileRecord, error)
	StartRun(ctx context.Context, sessionID string) (bool, error)
	MarkState(ctx context.Context, sessionID string, state models.SessionState, reason string) error
	MarkPartUploading(ctx context.Context, sessionID string, partNumber int) error
	MarkPartUploaded(ctx context.Context, sessionID string, partNumber int, tag string, attempts int) error
	MarkPartFailed(ctx context.Context, sessionID string, partNumber int, attempts int) error
	Confirm(ctx context.Context, sessionID string, parts []models.CompletedPart, location, etag string) (*models.FileRecord, error)
}

// StartRequest describes an admitted and planned upload.
type StartRequest struct {
	OwnerID     string
	Key         string
	ContentType string
	Kind        models.AssetKind
	TotalBytes  int64
	Plan        models.UploadPlan
	Tolerance   bool
	SourcePath  string
	Metadata    map[string]string
}

// Progress is told how many parts are done after every batch.
type Progress func(done, total int)

type Orchestrator struct {
	backend  Backend
	uploader PartUploader
	registry Registry
	logger   logging.Logger
	now      func() time.Time

	confirmBaseDelay time.Duration

	mu      sync.Mutex
	running map[string]context.CancelFunc
}

func New(backend Backend, u PartUploader, r Registry, logger logging.Logger) *Orchestrator {
	return &Orchestrator{
		backend:          backend,
		uploader:         u,
		registry:         r,
		logger:           logger.With("module", "orchestrator"),
		now:              func() time.Time { return time.Now().UTC() },
		confirmBaseDelay: confirmBaseDelay,
		running:          map[string]context.CancelFunc{},
	}
}

// Start opens the backend multipart session and records it as planned with
// every part pending. If recording fails the backend session is aborted.
func (o *Orchestrator) Start(ctx context.Context, req StartRequest) (*models.UploadSession, error) {
	if err := validatePlan(req.TotalBytes, req.Plan); err != nil {
		return nil, err
	}

	uploadID, err := o.backend.CreateMultipartUpload(ctx, req.Key, req.ContentType, req.Metadata)
	if err != nil {
		return nil, fmt.Errorf("error creating multipart upload: %w", err)
	}

	now := o.now()
	s := &models.UploadSession{
		ID:          uploadID,
		OwnerID:     req.OwnerID,
		TargetKey:   req.Key,
		ContentType: req.ContentType,
		Kind:        req.Kind,
		TotalBytes:  req.TotalBytes,
		ChunkBytes:  req.Plan.ChunkBytes,
		TotalParts:  req.Plan.TotalParts,
		Concurrency: req.Plan.WorkerCount,
		State:       models.SessionPlanned,
		Tolerance:   req.Tolerance,
		SourcePath:  req.SourcePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := o.registry.Record(ctx, s, registry.PendingParts(s)); err != nil {
		if abortErr := o.backend.AbortMultipartUpload(context.WithoutCancel(ctx), req.Key, uploadID); abortErr != nil {
			o.logger.Error(ctx, "abort of unrecorded session failed", "session_id", uploadID, "error", abortErr)
			err = multierr.Append(err, &models.SessionAbortError{SessionID: uploadID, Err: abortErr})
		}
		return nil, fmt.Errorf("error recording session: %w", err)
	}

	o.logger.Info(ctx, "session started",
		"session_id", s.ID, "owner_id", s.OwnerID, "kind", s.Kind,
		"bytes", s.TotalBytes, "chunk", s.ChunkBytes, "parts", s.TotalParts, "workers", s.Concurrency)
	return s, nil
}

func validatePlan(total int64, p models.UploadPlan) error {
	if total <= 0 || p.ChunkBytes <= 0 || p.WorkerCount < 1 || p.TotalParts < 1 {
		return fmt.Errorf("%w: incomplete upload plan", common.ErrInvalidInput)
	}
	if int64(p.TotalParts) != (total+p.ChunkBytes-1)/p.ChunkBytes {
		return fmt.Errorf("%w: %d parts of %d bytes do not cover %d bytes", common.ErrInvalidInput, p.TotalParts, p.ChunkBytes, total)
	}
	return nil
}

// Run uploads every part of a planned session from src and completes it.
// Running a completed session returns its file. A failed run aborts the
// backend session once; when that abort fails too the session is left failed
// for the sweeper and the error includes a *models.SessionAbortError.
func (o *Orchestrator) Run(ctx context.Context, sessionID string, src io.ReaderAt, progress Progress) (*models.FileRecord, error) {
	s, err := o.registry.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch {
	case s.State == models.SessionCompleted:
		return o.registry.File(ctx, sessionID)
	case s.State.IsTerminal():
		return nil, fmt.Errorf("%w: session %s is %s", common.ErrSessionTerminal, sessionID, s.State)
	case s.State != models.SessionPlanned:
		return nil, fmt.Errorf("%w: session %s is %s", common.ErrSessionBusy, sessionID, s.State)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !o.register(sessionID, cancel) {
		return nil, fmt.Errorf("%w: session %s", common.ErrSessionBusy, sessionID)
	}
	defer o.unregister(sessionID)

	ok, err := o.registry.StartRun(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: session %s", common.ErrSessionBusy, sessionID)
	}

	parts, err := o.uploadParts(runCtx, s, src, progress)
	if err != nil {
		return nil, o.abort(ctx, s, err)
	}
	return o.complete(runCtx, s, parts)
}

// uploadParts sends parts in ascending batches. A batch always runs to the
// end on a context detached from ctx; ctx is checked between batches.
func (o *Orchestrator) uploadParts(ctx context.Context, s *models.UploadSession, src io.ReaderAt, progress Progress) ([]models.CompletedPart, error) {
	workers := min(max(s.Concurrency, 1), s.TotalParts)
	detached := context.WithoutCancel(ctx)
	completed := make([]models.CompletedPart, s.TotalParts)

	for first := 1; first <= s.TotalParts; first += workers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		last := min(first+workers-1, s.TotalParts)
		var g errgroup.Group
		for n := first; n <= last; n++ {
			n := n
			g.Go(func() error {
				part, err := o.uploadOne(detached, s, src, n)
				if err != nil {
					return err
				}
				completed[n-1] = part
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		if progress != nil {
			progress(last, s.TotalParts)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return completed, nil
}

func (o *Orchestrator) uploadOne(ctx context.Context, s *models.UploadSession, src io.ReaderAt, n int) (models.CompletedPart, error) {
	body := make([]byte, s.PartSize(n))
	read, err := src.ReadAt(body, int64(n-1)*s.ChunkBytes)
	if read < len(body) {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return models.CompletedPart{}, fmt.Errorf("error reading part %d: %w", n, err)
	}

	if err := o.registry.MarkPartUploading(ctx, s.ID, n); err != nil {
		o.logger.Warn(ctx, "part status not saved", "session_id", s.ID, "part", n, "error", err)
	}

	res, err := o.uploader.UploadPart(ctx, s.ID, s.TargetKey, n, body)
	if err != nil {
		attempts := 1
		var pue *models.PartUploadError
		if errors.As(err, &pue) {
			attempts = pue.Attempts
		}
		if merr := o.registry.MarkPartFailed(ctx, s.ID, n, attempts); merr != nil {
			o.logger.Warn(ctx, "part status not saved", "session_id", s.ID, "part", n, "error", merr)
		}
		return models.CompletedPart{}, err
	}

	if err := o.registry.MarkPartUploaded(ctx, s.ID, n, res.IntegrityTag, res.Attempts); err != nil {
		o.logger.Warn(ctx, "part status not saved", "session_id", s.ID, "part", n, "error", err)
	}
	return res.Completed(), nil
}

func (o *Orchestrator) complete(ctx context.Context, s *models.UploadSession, parts []models.CompletedPart) (*models.FileRecord, error) {
	if err := o.registry.MarkState(ctx, s.ID, models.SessionCompleting, ""); err != nil {
		return nil, o.abort(ctx, s, err)
	}

	location, etag, err := o.backend.CompleteMultipartUpload(ctx, s.TargetKey, s.ID, parts)
	if err != nil {
		return nil, o.abort(ctx, s, &models.CompletionError{SessionID: s.ID, Err: err})
	}

	// The object exists from here on; confirmation failures must not abort.
	var file *models.FileRecord
	b := retry.WithMaxRetries(confirmRetries, retry.NewExponential(o.confirmBaseDelay))
	err = retry.Do(context.WithoutCancel(ctx), b, func(ctx context.Context) error {
		f, err := o.registry.Confirm(ctx, s.ID, parts, location, etag)
		if err != nil {
			if errors.Is(err, common.ErrInvalidInput) || errors.Is(err, common.ErrSessionTerminal) {
				return err
			}
			return retry.RetryableError(err)
		}
		file = f
		return nil
	})
	if err != nil {
		o.logger.Error(ctx, "confirmation failed", "session_id", s.ID, "location", location, "error", err)
		return nil, fmt.Errorf("error confirming session %s: %w", s.ID, err)
	}

	o.logger.Info(ctx, "upload completed", "session_id", s.ID, "file_id", file.ID, "size", file.Size)
	return file, nil
}

// abort issues the single remote abort for a failed run and records the
// outcome. The returned error always wraps cause.
func (o *Orchestrator) abort(ctx context.Context, s *models.UploadSession, cause error) error {
	ctx = context.WithoutCancel(ctx)
	reason := cause.Error()

	if err := o.backend.AbortMultipartUpload(ctx, s.TargetKey, s.ID); err != nil {
		o.logger.Error(ctx, "abort failed", "session_id", s.ID, "cause", cause, "error", err)
		if merr := o.registry.MarkState(ctx, s.ID, models.SessionFailed, reason); merr != nil {
			o.logger.Warn(ctx, "session state not saved", "session_id", s.ID, "error", merr)
		}
		return multierr.Combine(cause, &models.SessionAbortError{SessionID: s.ID, Err: err})
	}

	if err := o.registry.MarkState(ctx, s.ID, models.SessionAborted, reason); err != nil {
		o.logger.Warn(ctx, "session state not saved", "session_id", s.ID, "error", err)
	}
	o.logger.Warn(ctx, "upload aborted", "session_id", s.ID, "cause", cause)
	return cause
}

// Cancel stops an in-process run after its current batch. It reports whether
// such a run existed.
func (o *Orchestrator) Cancel(sessionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	cancel, ok := o.running[sessionID]
	if ok {
		cancel()
	}
	return ok
}

func (o *Orchestrator) IsRunning(sessionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, ok := o.running[sessionID]
	return ok
}

// Abort ends a session on the caller's request. A running session is
// cancelled and aborted by its own run. Aborting an aborted session is a
// no-op; completed sessions cannot be aborted.
func (o *Orchestrator) Abort(ctx context.Context, sessionID string) error {
	if o.Cancel(sessionID) {
		o.logger.Info(ctx, "running session cancelled", "session_id", sessionID)
		return nil
	}

	s, err := o.registry.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	switch s.State {
	case models.SessionAborted:
		return nil
	case models.SessionCompleted:
		return fmt.Errorf("%w: session %s is completed", common.ErrSessionTerminal, sessionID)
	}

	if err := o.abort(ctx, s, errAbortedByCaller); errors.Is(err, common.ErrSessionAbort) {
		return err
	}
	return nil
}

func (o *Orchestrator) register(sessionID string, cancel context.CancelFunc) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.running[sessionID]; ok {
		return false
	}
	o.running[sessionID] = cancel
	return true
}

func (o *Orchestrator) unregister(sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.running, sessionID)
}
