package usage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

const defaultQuota = int64(10) << 30

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db, defaultQuota), mock, db
}

func TestGetUsage_Row(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT used_bytes, quota_bytes, bypass FROM usage WHERE owner_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"used_bytes", "quota_bytes", "bypass"}).AddRow(int64(900), int64(1000), true))

	got, err := repo.GetUsage(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &models.UsageEntry{OwnerID: "u1", UsedBytes: 900, QuotaBytes: 1000, Bypass: true}, got)
}

func TestGetUsage_NoRowUsesDefaultQuota(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM usage`).WithArgs("new").WillReturnError(sql.ErrNoRows)

	got, err := repo.GetUsage(context.Background(), "new")
	require.NoError(t, err)
	assert.Equal(t, &models.UsageEntry{OwnerID: "new", QuotaBytes: defaultQuota}, got)
}

func TestGetUsage_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM usage`).WillReturnError(errors.New("db down"))

	_, err := repo.GetUsage(context.Background(), "u1")
	assert.ErrorContains(t, err, "failed to select usage: db down")
}

func TestApplyDelta(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT INTO usage .*ON CONFLICT \(owner_id\) DO UPDATE SET used_bytes = GREATEST\(usage.used_bytes \+ \$2, 0\)`).
		WithArgs("u1", int64(125829120), defaultQuota).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ApplyDelta(context.Background(), "u1", 125829120))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDelta_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO usage`).WillReturnError(errors.New("db down"))

	assert.ErrorContains(t, repo.ApplyDelta(context.Background(), "u1", 1), "db error")
}

func TestSetQuota(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT INTO usage \(owner_id, quota_bytes, bypass\).*ON CONFLICT`).
		WithArgs("u1", int64(1)<<40, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetQuota(context.Background(), "u1", int64(1)<<40, false))
}
