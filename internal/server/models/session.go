package models

import (
	"slices"
	"time"
)

// SessionState is the lifecycle state of an UploadSession.
type SessionState string

const (
	SessionPlanned    SessionState = "planned"
	SessionInProgress SessionState = "in_progress"
	SessionCompleting SessionState = "completing"
	SessionCompleted  SessionState = "completed"
	SessionAborted    SessionState = "aborted"
	SessionFailed     SessionState = "failed"
)

// IsTerminal reports whether no further uploads may happen in this state.
// Failed sessions are terminal for callers but still swept for remote cleanup.
func (s SessionState) IsTerminal() bool {
	return s == SessionCompleted || s == SessionAborted || s == SessionFailed
}

// sessionTransitions lists, per target state, the states a plain state update
// may move a session from. Sessions are created planned and only confirmation
// completes them.
var sessionTransitions = map[SessionState][]SessionState{
	SessionInProgress: {SessionPlanned},
	SessionCompleting: {SessionInProgress},
	SessionAborted:    {SessionPlanned, SessionInProgress, SessionCompleting, SessionFailed},
	SessionFailed:     {SessionPlanned, SessionInProgress, SessionCompleting, SessionFailed},
}

// AllowedFrom returns the states a session may leave to enter s.
func (s SessionState) AllowedFrom() []SessionState {
	return sessionTransitions[s]
}

// CanMoveTo reports whether a state update may take a session from s to next.
func (s SessionState) CanMoveTo(next SessionState) bool {
	return slices.Contains(sessionTransitions[next], s)
}

// UploadSession is one logical object being assembled from parts. ID is the
// multipart upload id issued by the object-storage backend.
type UploadSession struct {
	ID          string
	OwnerID     string
	TargetKey   string
	ContentType string
	Kind        AssetKind

	TotalBytes  int64
	ChunkBytes  int64
	TotalParts  int
	Concurrency int

	State SessionState
	// Tolerance marks sessions admitted past the quota under the overshoot band.
	Tolerance bool
	// SourcePath locates the staged bytes for Upload; empty for streamed uploads.
	SourcePath    string
	FailureReason string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// Plan returns the upload plan the session was created with.
func (s *UploadSession) Plan() UploadPlan {
	return UploadPlan{ChunkBytes: s.ChunkBytes, TotalParts: s.TotalParts, WorkerCount: s.Concurrency}
}

// PartSize returns the byte length of part n (1-indexed). Only the last part
// may be shorter than ChunkBytes.
func (s *UploadSession) PartSize(n int) int64 {
	if n < s.TotalParts {
		return s.ChunkBytes
	}
	return s.TotalBytes - s.ChunkBytes*int64(s.TotalParts-1)
}
