package quota

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

const GB = int64(1000 * 1000 * 1000)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger         { return n }

type fakeLedger struct {
	entry *models.UsageEntry
	err   error
	calls int
}

func (f *fakeLedger) GetUsage(_ context.Context, ownerID string) (*models.UsageEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	e := *f.entry
	e.OwnerID = ownerID
	return &e, nil
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		entry    models.UsageEntry
		proposed int64
		want     Outcome
	}{
		{"within quota", models.UsageEntry{UsedBytes: 900 * GB, QuotaBytes: 1000 * GB}, 50 * GB, Admit},
		{"exactly at quota", models.UsageEntry{UsedBytes: 900 * GB, QuotaBytes: 1000 * GB}, 100 * GB, Admit},
		{"tolerance band", models.UsageEntry{UsedBytes: 1000 * GB, QuotaBytes: 1000 * GB}, 400 * GB, AdmitWithTolerance},
		{"tolerance ceiling is exclusive", models.UsageEntry{UsedBytes: 1000 * GB, QuotaBytes: 1000 * GB}, 500 * GB, Deny},
		{"far past tolerance", models.UsageEntry{UsedBytes: 1000 * GB, QuotaBytes: 1000 * GB}, 600 * GB, Deny},
		{"already over quota", models.UsageEntry{UsedBytes: 1001 * GB, QuotaBytes: 1000 * GB}, 1, Deny},
		{"bypass ignores usage", models.UsageEntry{UsedBytes: 5000 * GB, QuotaBytes: 1000 * GB, Bypass: true}, 600 * GB, Admit},
		{"zero quota denies", models.UsageEntry{QuotaBytes: 0}, 1, Deny},
		{"zero quota with bypass", models.UsageEntry{QuotaBytes: 0, Bypass: true}, 1, Admit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := tt.entry
			d := Evaluate(&entry, tt.proposed, DefaultToleranceFactor)
			assert.Equal(t, tt.want, d.Outcome, d.Outcome.String())
			assert.Equal(t, tt.want != Deny, d.Allowed())
		})
	}
}

func TestEvaluate_CustomFactor(t *testing.T) {
	entry := models.UsageEntry{UsedBytes: 1000 * GB, QuotaBytes: 1000 * GB}

	assert.Equal(t, Deny, Evaluate(&entry, 150*GB, 1.1).Outcome)
	assert.Equal(t, AdmitWithTolerance, Evaluate(&entry, 150*GB, 1.2).Outcome)
	assert.Equal(t, Deny, Evaluate(&entry, 1, 1.0).Outcome)
}

func TestEvaluate_HugeFiguresDoNotWrap(t *testing.T) {
	nearMax := models.UsageEntry{UsedBytes: math.MaxInt64 - 10, QuotaBytes: math.MaxInt64 - 5}
	assert.Equal(t, Deny, Evaluate(&nearMax, 100, 1.0).Outcome)
	assert.Equal(t, Admit, Evaluate(&nearMax, 5, 1.0).Outcome)

	small := models.UsageEntry{UsedBytes: 1, QuotaBytes: 1000 * GB}
	assert.Equal(t, Deny, Evaluate(&small, math.MaxInt64, DefaultToleranceFactor).Outcome)

	full := models.UsageEntry{UsedBytes: 1000 * GB, QuotaBytes: 1000 * GB}
	assert.Equal(t, Deny, Evaluate(&full, math.MaxInt64, DefaultToleranceFactor).Outcome)
}

func TestDecision_Err(t *testing.T) {
	d := Decision{Outcome: Deny, OwnerID: "u1", UsedBytes: 1000 * GB, QuotaBytes: 1000 * GB, RequestedBytes: 600 * GB}

	err := d.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrQuotaExceeded)

	var qe *models.QuotaExceededError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "u1", qe.OwnerID)
	assert.Equal(t, 600*GB, qe.RequestedBytes)

	assert.NoError(t, Decision{Outcome: AdmitWithTolerance}.Err())
}

func TestGate_Admit(t *testing.T) {
	ledger := &fakeLedger{entry: &models.UsageEntry{UsedBytes: 1000 * GB, QuotaBytes: 1000 * GB}}
	g := NewGate(ledger, 0, nopLogger{})

	d, err := g.Admit(context.Background(), "u1", 400*GB)
	require.NoError(t, err)
	assert.Equal(t, AdmitWithTolerance, d.Outcome)
	assert.Equal(t, "u1", d.OwnerID)

	d, err = g.Admit(context.Background(), "u1", 600*GB)
	require.NoError(t, err)
	assert.Equal(t, Deny, d.Outcome)
	assert.ErrorIs(t, d.Err(), common.ErrQuotaExceeded)
	assert.Equal(t, 2, ledger.calls)
}

func TestGate_Admit_InvalidInputSkipsLedger(t *testing.T) {
	ledger := &fakeLedger{entry: &models.UsageEntry{QuotaBytes: GB}}
	g := NewGate(ledger, 1.5, nopLogger{})

	_, err := g.Admit(context.Background(), "u1", 0)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Equal(t, 0, ledger.calls)
}

func TestGate_Admit_LedgerError(t *testing.T) {
	boom := errors.New("db down")
	g := NewGate(&fakeLedger{err: boom}, 1.5, nopLogger{})

	_, err := g.Admit(context.Background(), "u1", GB)
	assert.ErrorIs(t, err, boom)
}

func TestDescribe(t *testing.T) {
	d := Decision{UsedBytes: 1 << 30, RequestedBytes: 512 << 20, QuotaBytes: 2 << 30}
	assert.Equal(t, "1.0 GiB + 512 MiB of 2.0 GiB", Describe(d))
}
