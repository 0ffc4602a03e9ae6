package client

import (
	"context"
	"time"
)

// Client is the uploadctl view of the assetkeeper upload API.
type Client interface {
	Close() error
	Initiate(ctx context.Context, req InitiateRequest) (*Session, error)
	Upload(ctx context.Context, sessionID string) (*File, error)
	Abort(ctx context.Context, sessionID string) error
	Status(ctx context.Context, sessionID string) (*Status, error)
	DownloadURL(ctx context.Context, sessionID string) (string, time.Time, error)
}

// InitiateRequest describes a staged file to register with the server.
// SourcePath is relative to the server's staging directory.
type InitiateRequest struct {
	Key         string
	FileName    string
	ContentType string
	SourcePath  string
	TotalBytes  int64
	Metadata    map[string]string
}

// Session is the plan the server settled on for a new upload.
type Session struct {
	ID          string
	Key         string
	Kind        string
	ChunkBytes  int64
	TotalParts  int
	WorkerCount int
	// Tolerance is set when the server admitted the upload inside its
	// quota overshoot band.
	Tolerance bool
}

type File struct {
	ID          string
	Key         string
	Kind        string
	ContentType string
	Size        int64
	Location    string
	ETag        string
	CreatedAt   time.Time
}

type Status struct {
	SessionID     string
	State         string
	Kind          string
	Key           string
	TotalBytes    int64
	ChunkBytes    int64
	TotalParts    int
	UploadedParts int
	Tolerance     bool
	FailureReason string
	UpdatedAt     time.Time
	File          *File
}

// Terminal reports whether the session can no longer change state.
func (s *Status) Terminal() bool {
	switch s.State {
	case "completed", "aborted", "failed":
		return true
	}
	return false
}
