// Package planner derives chunk sizes and worker counts for multipart uploads.
// Everything here is pure: no I/O, no clocks, no shared state.
package planner

import (
	"fmt"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

const MiB int64 = 1024 * 1024

// Backend limits for S3-compatible multipart uploads.
const (
	MinChunkBytes = 5 * MiB
	MaxChunkBytes = 50 * MiB
	MaxParts      = 10000
)

const (
	DefaultSmallTierBytes = 50 * MiB
	DefaultLargeTierBytes = 500 * MiB
	DefaultMaxConcurrency = 8

	smallChunkBytes  = 5 * MiB
	mediumChunkBytes = 10 * MiB
	largeChunkBytes  = 25 * MiB

	smallWorkers = 4
	largeWorkers = 10
)

// Planner holds the tier boundaries and the mid-tier worker ceiling.
type Planner struct {
	smallTier      int64
	largeTier      int64
	maxConcurrency int
}

// New builds a Planner. Non-positive arguments fall back to the defaults, and
// a large tier not above the small tier is reset to the default pair.
func New(smallTier, largeTier int64, maxConcurrency int) *Planner {
	if smallTier <= 0 {
		smallTier = DefaultSmallTierBytes
	}
	if largeTier <= 0 {
		largeTier = DefaultLargeTierBytes
	}
	if largeTier <= smallTier {
		smallTier, largeTier = DefaultSmallTierBytes, DefaultLargeTierBytes
	}
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &Planner{smallTier: smallTier, largeTier: largeTier, maxConcurrency: maxConcurrency}
}

// Default is a Planner with the stock tiers and a ceiling of 8 workers.
func Default() *Planner {
	return New(0, 0, 0)
}

// Chunks returns the chunk size and part count for an asset of totalBytes.
func (p *Planner) Chunks(totalBytes int64) (int64, int, error) {
	if totalBytes <= 0 {
		return 0, 0, fmt.Errorf("%w: total bytes must be positive, got %d", common.ErrInvalidInput, totalBytes)
	}

	chunk := smallChunkBytes
	switch {
	case totalBytes >= p.largeTier:
		chunk = largeChunkBytes
	case totalBytes >= p.smallTier:
		chunk = mediumChunkBytes
	}

	if ceilDiv(totalBytes, chunk) > MaxParts {
		chunk = ceilDiv(totalBytes, MaxParts)
	}
	chunk = min(max(chunk, MinChunkBytes), MaxChunkBytes)

	parts := ceilDiv(totalBytes, chunk)
	if parts > MaxParts {
		return 0, 0, fmt.Errorf("%w: asset of %d bytes exceeds backend limits", common.ErrInvalidInput, totalBytes)
	}
	return chunk, int(parts), nil
}

// Workers returns how many parts may be in flight at once. The result is
// always within [1, totalParts].
func (p *Planner) Workers(totalBytes int64, totalParts int) int {
	if totalParts < 1 {
		return 1
	}

	workers := smallWorkers
	switch {
	case totalBytes >= p.largeTier:
		workers = largeWorkers
	case totalBytes >= p.smallTier:
		workers = p.maxConcurrency
	}

	return max(1, min(workers, totalParts))
}

// Plan combines Chunks and Workers.
func (p *Planner) Plan(totalBytes int64) (models.UploadPlan, error) {
	chunk, parts, err := p.Chunks(totalBytes)
	if err != nil {
		return models.UploadPlan{}, err
	}
	return models.UploadPlan{
		ChunkBytes:  chunk,
		TotalParts:  parts,
		WorkerCount: p.Workers(totalBytes, parts),
	}, nil
}

// PlanChunks applies the default tiers.
func PlanChunks(totalBytes int64) (int64, int, error) {
	return Default().Chunks(totalBytes)
}

// PlanWorkers applies the default tiers with the given mid-tier ceiling.
func PlanWorkers(totalBytes int64, totalParts int, maxConcurrency int) int {
	return New(0, 0, maxConcurrency).Workers(totalBytes, totalParts)
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
