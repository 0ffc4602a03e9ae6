package files

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func sampleFile(now time.Time) *models.FileRecord {
	return &models.FileRecord{
		ID:          "7d3c2d0e-2c7a-4b53-9a55-1f7a8e0c1b11",
		SessionID:   "upl-1",
		OwnerID:     "u1",
		Key:         "owners/u1/a.cr3",
		Kind:        models.AssetRaw,
		ContentType: "image/x-canon-cr3",
		Size:        120,
		Location:    "http://minio/assets/owners/u1/a.cr3",
		ETag:        `"abc-12"`,
		CreatedAt:   now,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f := sampleFile(now)

	mock.ExpectExec(`(?s)^INSERT INTO files \(id, session_id, owner_id, key, kind, content_type, size, location, etag, created_at\)`).
		WithArgs(f.ID, "upl-1", "u1", "owners/u1/a.cr3", "raw", "image/x-canon-cr3", int64(120), f.Location, f.ETag, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), f))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateSession(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO files`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "files_session_id_key"})

	err := repo.Create(context.Background(), sampleFile(time.Now()))
	require.Error(t, err)
	assert.True(t, dbx.IsUniqueViolation(err))
}

func TestGetBySessionID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	want := sampleFile(now)

	rows := sqlmock.NewRows([]string{"id", "session_id", "owner_id", "key", "kind", "content_type", "size", "location", "etag", "created_at"}).
		AddRow(want.ID, want.SessionID, want.OwnerID, want.Key, "raw", want.ContentType, want.Size, want.Location, want.ETag, now)
	mock.ExpectQuery(`(?s)FROM files WHERE session_id = \$1`).WithArgs("upl-1").WillReturnRows(rows)

	got, err := repo.GetBySessionID(context.Background(), "upl-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetBySessionID_NotFoundAndError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM files`).WithArgs("a").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`FROM files`).WithArgs("b").WillReturnError(errors.New("db down"))

	_, err := repo.GetBySessionID(context.Background(), "a")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.GetBySessionID(context.Background(), "b")
	assert.ErrorContains(t, err, "failed to select file: db down")
}
