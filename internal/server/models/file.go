package models

import "time"

// FileRecord is the durable metadata of an assembled object. There is at most
// one per session; confirming a session twice returns the same record.
type FileRecord struct {
	ID          string
	SessionID   string
	OwnerID     string
	Key         string
	Kind        AssetKind
	ContentType string
	// Size is the confirmed byte count, the sum of uploaded part sizes.
	Size      int64
	Location  string
	ETag      string
	CreatedAt time.Time
}

// ObjectInfo describes an object as the storage backend reports it.
type ObjectInfo struct {
	Key      string
	Size     int64
	ETag     string
	Location string
}
