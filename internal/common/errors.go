// Package common defines shared constants and sentinel errors used across
// server and client layers of assetkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors: non-positive sizes, bad keys, oversized assets.
	ErrInvalidInput = errors.New("invalid input")

	// Upload lifecycle errors.
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrPartUpload      = errors.New("part upload failed")
	ErrSessionAbort    = errors.New("session abort failed")
	ErrCompletion      = errors.New("upload completion rejected")
	ErrSessionTerminal = errors.New("session is in a terminal state")
	ErrSessionBusy     = errors.New("session is already running")
	ErrStateTransition = errors.New("illegal session state transition")
)
