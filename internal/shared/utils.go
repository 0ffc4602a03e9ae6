// Package shared holds helpers for handling signing secrets.
package shared

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MinSecretBytes is the shortest signing secret NewSecret will produce.
const MinSecretBytes = 32

// NewSecret returns size random bytes hex-encoded, suitable for
// ASSETKEEPER_SECRET_KEY.
func NewSecret(size int) (string, error) {
	if size < MinSecretBytes {
		return "", fmt.Errorf("secret must be at least %d bytes, got %d", MinSecretBytes, size)
	}

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	defer WipeByteArray(b)

	return hex.EncodeToString(b), nil
}

// WipeByteArray zeroes b. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
