// Package assets classifies uploads into asset kinds and validates object keys.
package assets

import (
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

// MaxKeyLength is the longest object key the storage backend accepts.
const MaxKeyLength = 1024

const fallbackContentType = "application/octet-stream"

// Camera RAW formats sniff as image/tiff or not at all, so they are matched
// by extension before the content type is consulted.
var rawExtensions = map[string]struct{}{
	".cr2": {}, ".cr3": {}, ".nef": {}, ".nrw": {}, ".arw": {}, ".dng": {},
	".raf": {}, ".orf": {}, ".rw2": {}, ".pef": {}, ".srw": {}, ".3fr": {},
}

var galleryExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
	".heic": {}, ".heif": {}, ".tif": {}, ".tiff": {}, ".avif": {},
}

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".m4v": {}, ".mkv": {}, ".avi": {}, ".webm": {}, ".mts": {},
}

// Classify resolves the asset kind from a file name and content type.
func Classify(name, contentType string) models.AssetKind {
	ext := strings.ToLower(path.Ext(name))
	if _, ok := rawExtensions[ext]; ok {
		return models.AssetRaw
	}

	mediaType, _, _ := strings.Cut(strings.ToLower(contentType), ";")
	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return models.AssetGallery
	case strings.HasPrefix(mediaType, "video/"):
		return models.AssetVideo
	}

	if _, ok := galleryExtensions[ext]; ok {
		return models.AssetGallery
	}
	if _, ok := videoExtensions[ext]; ok {
		return models.AssetVideo
	}
	return models.AssetDocument
}

// DetectContentType sniffs the leading bytes of r.
func DetectContentType(r io.Reader) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("detect content type: %w", err)
	}
	if mt == nil {
		return fallbackContentType, nil
	}
	return mt.String(), nil
}

// ValidateKey checks that key is usable as an object key. Violations wrap
// common.ErrInvalidInput.
func ValidateKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty key", common.ErrInvalidInput)
	case len(key) > MaxKeyLength:
		return fmt.Errorf("%w: key longer than %d bytes", common.ErrInvalidInput, MaxKeyLength)
	case !utf8.ValidString(key):
		return fmt.Errorf("%w: key is not valid UTF-8", common.ErrInvalidInput)
	case strings.HasPrefix(key, "/"):
		return fmt.Errorf("%w: key must be relative", common.ErrInvalidInput)
	case strings.HasSuffix(key, "/"):
		return fmt.Errorf("%w: key names a directory", common.ErrInvalidInput)
	}

	for _, seg := range strings.Split(key, "/") {
		if seg == ".." || seg == "." {
			return fmt.Errorf("%w: key contains %q segment", common.ErrInvalidInput, seg)
		}
	}
	if strings.ContainsAny(key, "\x00\r\n") {
		return fmt.Errorf("%w: key contains control characters", common.ErrInvalidInput)
	}
	return nil
}

// OwnerKey places key under the owner's namespace.
func OwnerKey(ownerID, key string) string {
	return path.Join("owners", ownerID, key)
}
