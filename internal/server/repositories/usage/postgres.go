// Package usage is the PostgreSQL-backed usage ledger consulted by the quota
// gate and debited when uploads complete.
package usage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
// Owners without a row are reported with zero usage and defaultQuota.
type PostgresRepository struct {
	db           dbx.DBTX
	defaultQuota int64
}

func NewPostgresRepository(db dbx.DBTX, defaultQuota int64) *PostgresRepository {
	return &PostgresRepository{db: db, defaultQuota: defaultQuota}
}

func (r *PostgresRepository) GetUsage(ctx context.Context, ownerID string) (*models.UsageEntry, error) {
	query := `SELECT used_bytes, quota_bytes, bypass FROM usage WHERE owner_id = $1`

	e := &models.UsageEntry{OwnerID: ownerID}
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&e.UsedBytes, &e.QuotaBytes, &e.Bypass)
	if errors.Is(err, sql.ErrNoRows) {
		e.QuotaBytes = r.defaultQuota
		return e, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select usage: %w", err)
	}
	return e, nil
}

// ApplyDelta adds delta to the owner's used bytes, creating the row with the
// default quota on first use. Usage never drops below zero.
func (r *PostgresRepository) ApplyDelta(ctx context.Context, ownerID string, delta int64) error {
	query := `INSERT INTO usage (owner_id, used_bytes, quota_bytes) VALUES ($1, GREATEST($2, 0), $3)
		ON CONFLICT (owner_id) DO UPDATE SET used_bytes = GREATEST(usage.used_bytes + $2, 0), updated_at = now()`

	if _, err := r.db.ExecContext(ctx, query, ownerID, delta, r.defaultQuota); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetQuota(ctx context.Context, ownerID string, quotaBytes int64, bypass bool) error {
	query := `INSERT INTO usage (owner_id, quota_bytes, bypass) VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO UPDATE SET quota_bytes = EXCLUDED.quota_bytes, bypass = EXCLUDED.bypass, updated_at = now()`

	if _, err := r.db.ExecContext(ctx, query, ownerID, quotaBytes, bypass); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
