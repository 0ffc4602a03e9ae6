// Package files persists metadata of assembled objects in PostgreSQL.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a file record. A second record for the same session fails
// with a unique violation (see dbx.IsUniqueViolation).
func (r *PostgresRepository) Create(ctx context.Context, f *models.FileRecord) error {
	query := `INSERT INTO files (id, session_id, owner_id, key, kind, content_type, size, location, etag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.SessionID, f.OwnerID, f.Key, string(f.Kind), f.ContentType, f.Size, f.Location, f.ETag, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetBySessionID returns common.ErrorNotFound when the session has no file yet.
func (r *PostgresRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.FileRecord, error) {
	query := `SELECT id, session_id, owner_id, key, kind, content_type, size, location, etag, created_at
		FROM files WHERE session_id = $1`

	var (
		f    models.FileRecord
		kind string
	)
	err := r.db.QueryRowContext(ctx, query, sessionID).
		Scan(&f.ID, &f.SessionID, &f.OwnerID, &f.Key, &kind, &f.ContentType, &f.Size, &f.Location, &f.ETag, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	f.Kind = models.AssetKind(kind)
	return &f, nil
}
