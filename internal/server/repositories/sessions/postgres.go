// Package sessions persists upload sessions in PostgreSQL.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

const columns = `id, owner_id, target_key, content_type, kind, total_bytes, chunk_bytes, total_parts,
	concurrency, state, tolerance, source_path, failure_reason, created_at, updated_at, completed_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.UploadSession) error {
	query := `INSERT INTO upload_sessions (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	var completedAt sql.NullTime
	if s.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *s.CompletedAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.OwnerID, s.TargetKey, s.ContentType, string(s.Kind), s.TotalBytes, s.ChunkBytes, s.TotalParts,
		s.Concurrency, string(s.State), s.Tolerance, s.SourcePath, s.FailureReason, s.CreatedAt, s.UpdatedAt, completedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns common.ErrorNotFound when no session has the id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.UploadSession, error) {
	query := `SELECT ` + columns + ` FROM upload_sessions WHERE id = $1`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select session: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) CompareAndSetState(ctx context.Context, id string, from, to models.SessionState) (bool, error) {
	query := `UPDATE upload_sessions SET state = $3, updated_at = now() WHERE id = $1 AND state = $2`

	res, err := r.db.ExecContext(ctx, query, id, string(from), string(to))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

// UpdateState moves a session to state only from the states
// models.SessionState.AllowedFrom lists for it. It returns
// common.ErrStateTransition when the session is in any other state.
func (r *PostgresRepository) UpdateState(ctx context.Context, id string, state models.SessionState, reason string) error {
	from := state.AllowedFrom()
	if len(from) == 0 {
		return fmt.Errorf("%w: sessions never move to %s", common.ErrStateTransition, state)
	}

	args := []any{id, string(state), reason}
	marks := make([]string, len(from))
	for i, f := range from {
		args = append(args, string(f))
		marks[i] = fmt.Sprintf("$%d", len(args))
	}
	query := `UPDATE upload_sessions SET state = $2, failure_reason = $3, updated_at = now()
		WHERE id = $1 AND state IN (` + strings.Join(marks, ", ") + `)`

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	err = expectOne(res)
	if errors.Is(err, common.ErrSessionTerminal) {
		return fmt.Errorf("%w: session %s cannot move to %s", common.ErrStateTransition, id, state)
	}
	return err
}

func (r *PostgresRepository) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE upload_sessions SET state = 'completed', failure_reason = '', completed_at = $2, updated_at = $2
		WHERE id = $1 AND state <> 'completed'`

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

// ListOrphaned returns unfinished sessions idle since before staleBefore, plus
// every failed session (their remote abort still has to succeed).
func (r *PostgresRepository) ListOrphaned(ctx context.Context, staleBefore time.Time) ([]*models.UploadSession, error) {
	query := `SELECT ` + columns + ` FROM upload_sessions
		WHERE (state IN ('planned', 'in_progress', 'completing') AND updated_at < $1) OR state = 'failed'
		ORDER BY updated_at`

	rows, err := r.db.QueryContext(ctx, query, staleBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to select sessions: %w", err)
	}
	defer rows.Close()

	var result []*models.UploadSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTerminalBefore purges completed and aborted sessions (and, through the
// foreign key, their parts) last touched before the cutoff. File records stay.
func (r *PostgresRepository) DeleteTerminalBefore(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM upload_sessions WHERE state IN ('completed', 'aborted') AND updated_at < $1`

	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*models.UploadSession, error) {
	var (
		s           models.UploadSession
		kind, state string
		completedAt sql.NullTime
	)
	err := row.Scan(&s.ID, &s.OwnerID, &s.TargetKey, &s.ContentType, &kind, &s.TotalBytes, &s.ChunkBytes, &s.TotalParts,
		&s.Concurrency, &state, &s.Tolerance, &s.SourcePath, &s.FailureReason, &s.CreatedAt, &s.UpdatedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	s.Kind = models.AssetKind(kind)
	s.State = models.SessionState(state)
	if completedAt.Valid {
		t := completedAt.Time
		s.CompletedAt = &t
	}
	return &s, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrSessionTerminal
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
