// Package parts persists per-part upload outcomes in PostgreSQL.
package parts

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

// batchSize keeps multi-row inserts well under the 65535 bind parameter limit.
const batchSize = 1000

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateBatch inserts part rows with multi-row INSERTs of up to batchSize rows.
func (r *PostgresRepository) CreateBatch(ctx context.Context, parts []*models.PartRecord) error {
	for start := 0; start < len(parts); start += batchSize {
		end := min(start+batchSize, len(parts))
		if err := r.insert(ctx, parts[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) insert(ctx context.Context, parts []*models.PartRecord) error {
	var b strings.Builder
	b.WriteString(`INSERT INTO upload_parts (session_id, part_number, size, integrity_tag, attempts, status) VALUES `)

	args := make([]any, 0, len(parts)*6)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(", ")
		}
		n := i * 6
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6)
		args = append(args, p.SessionID, p.PartNumber, p.Size, p.IntegrityTag, p.Attempts, string(p.Status))
	}

	if _, err := r.db.ExecContext(ctx, b.String(), args...); err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return fmt.Errorf("parts for unknown session: %w", common.ErrorNotFound)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) MarkUploading(ctx context.Context, sessionID string, partNumber int) error {
	query := `UPDATE upload_parts SET status = 'uploading', updated_at = now()
		WHERE session_id = $1 AND part_number = $2`
	return r.exec(ctx, query, sessionID, partNumber)
}

func (r *PostgresRepository) MarkUploaded(ctx context.Context, sessionID string, partNumber int, tag string, attempts int) error {
	query := `UPDATE upload_parts SET status = 'uploaded', integrity_tag = $3, attempts = $4, updated_at = now()
		WHERE session_id = $1 AND part_number = $2`
	return r.exec(ctx, query, sessionID, partNumber, tag, attempts)
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, sessionID string, partNumber int, attempts int) error {
	query := `UPDATE upload_parts SET status = 'failed', attempts = $3, updated_at = now()
		WHERE session_id = $1 AND part_number = $2`
	return r.exec(ctx, query, sessionID, partNumber, attempts)
}

// List returns the session's parts ordered by part number.
func (r *PostgresRepository) List(ctx context.Context, sessionID string) ([]*models.PartRecord, error) {
	query := `SELECT session_id, part_number, size, integrity_tag, attempts, status, updated_at
		FROM upload_parts WHERE session_id = $1 ORDER BY part_number`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to select parts: %w", err)
	}
	defer rows.Close()

	var result []*models.PartRecord
	for rows.Next() {
		var (
			p      models.PartRecord
			status string
		)
		if err := rows.Scan(&p.SessionID, &p.PartNumber, &p.Size, &p.IntegrityTag, &p.Attempts, &status, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Status = models.PartStatus(status)
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
