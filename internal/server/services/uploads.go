package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/filex"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/assets"
	"github.com/dmitrijs2005/assetkeeper/internal/server/config"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/orchestrator"
	"github.com/dmitrijs2005/assetkeeper/internal/server/quota"
)

const defaultContentType = "application/octet-stream"

type Gate interface {
	Admit(ctx context.Context, ownerID string, proposedBytes int64) (quota.Decision, error)
}

type Planner interface {
	Plan(totalBytes int64) (models.UploadPlan, error)
}

type Orchestrator interface {
	Start(ctx context.Context, req orchestrator.StartRequest) (*models.UploadSession, error)
	Run(ctx context.Context, sessionID string, src io.ReaderAt, progress orchestrator.Progress) (*models.FileRecord, error)
	Abort(ctx context.Context, sessionID string) error
}

type Registry interface {
	Get(ctx context.Context, sessionID string) (*models.UploadSession, error)
	Parts(ctx context.Context, sessionID string) ([]*models.PartRecord, error)
	File(ctx context.Context, sessionID string) (*models.FileRecord, error)
}

type Presigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// InitiateRequest asks for a new upload. SourcePath, when set, names a file
// inside the staging directory that Upload will read.
type InitiateRequest struct {
	OwnerID     string
	Key         string
	FileName    string
	ContentType string
	SourcePath  string
	TotalBytes  int64
	Metadata    map[string]string
}

type InitiateResult struct {
	SessionID string
	Key       string
	Kind      models.AssetKind
	Plan      models.UploadPlan
	// Tolerance is set when the upload was admitted past the quota.
	Tolerance bool
}

type CompletionResult struct {
	SessionID string
	File      *models.FileRecord
}

// SessionStatus is a snapshot of a session and its parts.
type SessionStatus struct {
	Session  *models.UploadSession
	Parts    []*models.PartRecord
	Uploaded int
	File     *models.FileRecord
}

type UploadService struct {
	gate         Gate
	planner      Planner
	orchestrator Orchestrator
	registry     Registry
	presigner    Presigner
	logger       logging.Logger
	stagingDir   string
	downloadTTL  time.Duration
}

func NewUploadService(g Gate, p Planner, o Orchestrator, r Registry, ps Presigner, cfg *config.Config, l logging.Logger) *UploadService {
	return &UploadService{
		gate:         g,
		planner:      p,
		orchestrator: o,
		registry:     r,
		presigner:    ps,
		logger:       l.With("module", "upload_service"),
		stagingDir:   cfg.StagingDir,
		downloadTTL:  cfg.DownloadURLTTL,
	}
}

// Initiate validates the request, runs the quota gate, plans the upload and
// opens its session.
func (s *UploadService) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	if req.OwnerID == "" {
		return nil, common.ErrorUnauthorized
	}
	if err := assets.ValidateKey(req.Key); err != nil {
		return nil, err
	}
	if req.TotalBytes <= 0 {
		return nil, fmt.Errorf("%w: total bytes must be positive", common.ErrInvalidInput)
	}

	contentType := req.ContentType
	var source string
	if req.SourcePath != "" {
		var err error
		source, err = s.checkSource(req.SourcePath, req.TotalBytes)
		if err != nil {
			return nil, err
		}
		if contentType == "" {
			contentType = sniff(source)
		}
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	name := req.FileName
	if name == "" {
		name = path.Base(req.Key)
	}
	kind := assets.Classify(name, contentType)

	decision, err := s.gate.Admit(ctx, req.OwnerID, req.TotalBytes)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		return nil, decision.Err()
	}

	plan, err := s.planner.Plan(req.TotalBytes)
	if err != nil {
		return nil, err
	}

	key := assets.OwnerKey(req.OwnerID, req.Key)
	session, err := s.orchestrator.Start(ctx, orchestrator.StartRequest{
		OwnerID:     req.OwnerID,
		Key:         key,
		ContentType: contentType,
		Kind:        kind,
		TotalBytes:  req.TotalBytes,
		Plan:        plan,
		Tolerance:   decision.Outcome == quota.AdmitWithTolerance,
		SourcePath:  source,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, err
	}

	return &InitiateResult{
		SessionID: session.ID,
		Key:       key,
		Kind:      kind,
		Plan:      plan,
		Tolerance: session.Tolerance,
	}, nil
}

func (s *UploadService) checkSource(name string, want int64) (string, error) {
	p, err := filex.ResolveWithin(s.stagingDir, name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	fi, err := os.Stat(p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	if !fi.Mode().IsRegular() || fi.Size() != want {
		return "", fmt.Errorf("%w: staged file is %d bytes, expected %d", common.ErrInvalidInput, fi.Size(), want)
	}
	return p, nil
}

func sniff(p string) string {
	f, err := os.Open(p)
	if err != nil {
		return ""
	}
	defer f.Close()

	ct, err := assets.DetectContentType(f)
	if err != nil {
		return ""
	}
	return ct
}

// Upload runs a session from its staged source file.
func (s *UploadService) Upload(ctx context.Context, ownerID, sessionID string, progress orchestrator.Progress) (*CompletionResult, error) {
	session, err := s.owned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.State == models.SessionCompleted {
		return s.run(ctx, sessionID, nil, progress)
	}
	if session.SourcePath == "" {
		return nil, fmt.Errorf("%w: session %s has no staged source", common.ErrInvalidInput, sessionID)
	}

	f, err := os.Open(session.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() != session.TotalBytes {
		return nil, fmt.Errorf("%w: staged file is %d bytes, expected %d", common.ErrInvalidInput, fi.Size(), session.TotalBytes)
	}

	return s.run(ctx, sessionID, f, progress)
}

// UploadFrom runs a session reading parts from src.
func (s *UploadService) UploadFrom(ctx context.Context, ownerID, sessionID string, src io.ReaderAt, progress orchestrator.Progress) (*CompletionResult, error) {
	if _, err := s.owned(ctx, ownerID, sessionID); err != nil {
		return nil, err
	}
	return s.run(ctx, sessionID, src, progress)
}

func (s *UploadService) run(ctx context.Context, sessionID string, src io.ReaderAt, progress orchestrator.Progress) (*CompletionResult, error) {
	file, err := s.orchestrator.Run(ctx, sessionID, src, progress)
	if err != nil {
		s.logger.Error(ctx, "upload failed", "session_id", sessionID, "error", err)
		return nil, err
	}
	return &CompletionResult{SessionID: sessionID, File: file}, nil
}

func (s *UploadService) Abort(ctx context.Context, ownerID, sessionID string) error {
	if _, err := s.owned(ctx, ownerID, sessionID); err != nil {
		return err
	}
	return s.orchestrator.Abort(ctx, sessionID)
}

func (s *UploadService) Status(ctx context.Context, ownerID, sessionID string) (*SessionStatus, error) {
	session, err := s.owned(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	parts, err := s.registry.Parts(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	st := &SessionStatus{Session: session, Parts: parts}
	for _, p := range parts {
		if p.Status == models.PartUploaded {
			st.Uploaded++
		}
	}

	if session.State == models.SessionCompleted {
		st.File, err = s.registry.File(ctx, sessionID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
	}
	return st, nil
}

// DownloadURL presigns a GET for the file produced by a completed session.
func (s *UploadService) DownloadURL(ctx context.Context, ownerID, sessionID string) (string, time.Time, error) {
	if _, err := s.owned(ctx, ownerID, sessionID); err != nil {
		return "", time.Time{}, err
	}

	file, err := s.registry.File(ctx, sessionID)
	if err != nil {
		return "", time.Time{}, err
	}

	url, err := s.presigner.PresignGet(ctx, file.Key, s.downloadTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error presigning download: %w", err)
	}
	return url, time.Now().Add(s.downloadTTL), nil
}

// owned loads a session and hides sessions of other owners.
func (s *UploadService) owned(ctx context.Context, ownerID, sessionID string) (*models.UploadSession, error) {
	if ownerID == "" {
		return nil, common.ErrorUnauthorized
	}
	session, err := s.registry.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	return session, nil
}
