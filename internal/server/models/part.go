package models

import "time"

// PartStatus tracks one part through its upload attempts.
type PartStatus string

const (
	PartPending   PartStatus = "pending"
	PartUploading PartStatus = "uploading"
	PartUploaded  PartStatus = "uploaded"
	PartFailed    PartStatus = "failed"
)

// PartRecord is the persisted outcome of one chunk upload.
type PartRecord struct {
	SessionID    string
	PartNumber   int
	Size         int64
	IntegrityTag string
	Attempts     int
	Status       PartStatus
	UpdatedAt    time.Time
}

// CompletedPart is a successfully uploaded part as handed to multipart
// completion and to registry confirmation.
type CompletedPart struct {
	PartNumber   int
	IntegrityTag string
	Size         int64
}
