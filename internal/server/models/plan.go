package models

// UploadPlan is the derived chunking and concurrency plan for one upload.
type UploadPlan struct {
	ChunkBytes  int64
	TotalParts  int
	WorkerCount int
}
