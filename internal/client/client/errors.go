package client

import "errors"

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("session not found")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrRejected      = errors.New("request rejected")
)
