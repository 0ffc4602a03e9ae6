// Package models defines server-side data models persisted in the database
// and the typed errors that travel with them.
package models

import "fmt"

// AssetKind is the upload category resolved once at initiate time and carried
// unchanged on the session.
type AssetKind string

const (
	AssetGallery  AssetKind = "gallery"
	AssetRaw      AssetKind = "raw"
	AssetVideo    AssetKind = "video"
	AssetDocument AssetKind = "document"
)

func (k AssetKind) Valid() bool {
	switch k {
	case AssetGallery, AssetRaw, AssetVideo, AssetDocument:
		return true
	}
	return false
}

// ParseAssetKind converts a stored column value back into an AssetKind.
func ParseAssetKind(s string) (AssetKind, error) {
	k := AssetKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown asset kind %q", s)
	}
	return k, nil
}
