// Package quota implements the admission check run before an upload is
// planned: admit, admit with tolerance, or deny.
package quota

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

// DefaultToleranceFactor bounds how far past the quota a tolerated upload may
// project usage.
const DefaultToleranceFactor = 1.5

// Outcome is the three-way admission result.
type Outcome int

const (
	Deny Outcome = iota
	Admit
	AdmitWithTolerance
)

func (o Outcome) String() string {
	switch o {
	case Admit:
		return "admit"
	case AdmitWithTolerance:
		return "admit_with_tolerance"
	default:
		return "deny"
	}
}

// Decision is the gate's verdict along with the figures it was based on.
type Decision struct {
	Outcome        Outcome
	OwnerID        string
	UsedBytes      int64
	QuotaBytes     int64
	RequestedBytes int64
	Bypass         bool
}

// Allowed reports whether the upload may proceed.
func (d Decision) Allowed() bool {
	return d.Outcome == Admit || d.Outcome == AdmitWithTolerance
}

// Err returns a *models.QuotaExceededError for a denial and nil otherwise.
func (d Decision) Err() error {
	if d.Allowed() {
		return nil
	}
	return &models.QuotaExceededError{
		OwnerID:        d.OwnerID,
		UsedBytes:      d.UsedBytes,
		QuotaBytes:     d.QuotaBytes,
		RequestedBytes: d.RequestedBytes,
	}
}

// Ledger is the read side of the external usage ledger.
type Ledger interface {
	GetUsage(ctx context.Context, ownerID string) (*models.UsageEntry, error)
}

// Gate consults the ledger and classifies proposed uploads.
type Gate struct {
	ledger          Ledger
	toleranceFactor float64
	logger          logging.Logger
}

// NewGate builds a Gate. A toleranceFactor below 1 is replaced by the default.
func NewGate(ledger Ledger, toleranceFactor float64, l logging.Logger) *Gate {
	if toleranceFactor < 1 {
		toleranceFactor = DefaultToleranceFactor
	}
	return &Gate{ledger: ledger, toleranceFactor: toleranceFactor, logger: l.With("module", "quota")}
}

// Admit evaluates proposedBytes against the owner's ledger entry. A denial is
// reported through Decision, not the error; the error covers bad input and
// ledger failures.
func (g *Gate) Admit(ctx context.Context, ownerID string, proposedBytes int64) (Decision, error) {
	if proposedBytes <= 0 {
		return Decision{}, fmt.Errorf("%w: proposed bytes must be positive, got %d", common.ErrInvalidInput, proposedBytes)
	}

	entry, err := g.ledger.GetUsage(ctx, ownerID)
	if err != nil {
		return Decision{}, fmt.Errorf("read usage for %s: %w", ownerID, err)
	}

	d := Evaluate(entry, proposedBytes, g.toleranceFactor)

	switch d.Outcome {
	case Deny:
		g.logger.Warn(ctx, "upload denied", "owner_id", ownerID, "usage", Describe(d))
	case AdmitWithTolerance:
		g.logger.Info(ctx, "upload admitted with tolerance", "owner_id", ownerID, "usage", Describe(d))
	default:
		g.logger.Debug(ctx, "upload admitted", "owner_id", ownerID, "bypass", d.Bypass)
	}

	return d, nil
}

// Evaluate is the pure admission rule.
func Evaluate(entry *models.UsageEntry, proposedBytes int64, toleranceFactor float64) Decision {
	d := Decision{
		OwnerID:        entry.OwnerID,
		UsedBytes:      entry.UsedBytes,
		QuotaBytes:     entry.QuotaBytes,
		RequestedBytes: proposedBytes,
		Bypass:         entry.Bypass,
	}

	if entry.Bypass {
		d.Outcome = Admit
		return d
	}

	// Compared as headroom so that usage plus request cannot overflow.
	underQuota := entry.UsedBytes <= entry.QuotaBytes
	switch {
	case underQuota && proposedBytes <= entry.QuotaBytes-entry.UsedBytes:
		d.Outcome = Admit
	case underQuota && float64(entry.UsedBytes)+float64(proposedBytes) < float64(entry.QuotaBytes)*toleranceFactor:
		d.Outcome = AdmitWithTolerance
	default:
		d.Outcome = Deny
	}
	return d
}

// Describe renders a decision's figures for people, e.g. "1.2 TiB + 50 GiB of 1.5 TiB".
func Describe(d Decision) string {
	return fmt.Sprintf("%s + %s of %s",
		humanize.IBytes(uint64(max(d.UsedBytes, 0))),
		humanize.IBytes(uint64(max(d.RequestedBytes, 0))),
		humanize.IBytes(uint64(max(d.QuotaBytes, 0))))
}
