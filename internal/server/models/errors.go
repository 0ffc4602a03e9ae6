package models

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
)

// QuotaExceededError is returned when the quota gate denies an upload. It
// carries the figures needed to render an upgrade prompt.
type QuotaExceededError struct {
	OwnerID        string
	UsedBytes      int64
	QuotaBytes     int64
	RequestedBytes int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: used %s of %s, requested %s",
		humanize.IBytes(uint64(max(e.UsedBytes, 0))),
		humanize.IBytes(uint64(max(e.QuotaBytes, 0))),
		humanize.IBytes(uint64(max(e.RequestedBytes, 0))))
}

func (e *QuotaExceededError) Is(target error) bool { return target == common.ErrQuotaExceeded }

// PartUploadError reports a part whose retries were exhausted.
type PartUploadError struct {
	SessionID  string
	PartNumber int
	Attempts   int
	Err        error
}

func (e *PartUploadError) Error() string {
	return fmt.Sprintf("session %s: part %d failed after %d attempts: %v", e.SessionID, e.PartNumber, e.Attempts, e.Err)
}

func (e *PartUploadError) Unwrap() error        { return e.Err }
func (e *PartUploadError) Is(target error) bool { return target == common.ErrPartUpload }

// SessionAbortError reports that the remote abort call itself failed. The
// session is left in the failed state for the sweeper.
type SessionAbortError struct {
	SessionID string
	Err       error
}

func (e *SessionAbortError) Error() string {
	return fmt.Sprintf("session %s: abort failed: %v", e.SessionID, e.Err)
}

func (e *SessionAbortError) Unwrap() error        { return e.Err }
func (e *SessionAbortError) Is(target error) bool { return target == common.ErrSessionAbort }

// CompletionError reports that the backend rejected final assembly.
type CompletionError struct {
	SessionID string
	Err       error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("session %s: complete multipart upload: %v", e.SessionID, e.Err)
}

func (e *CompletionError) Unwrap() error        { return e.Err }
func (e *CompletionError) Is(target error) bool { return target == common.ErrCompletion }
