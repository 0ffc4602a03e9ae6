package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/assetkeeper/internal/dbx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/files"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/parts"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/usage"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Sessions(db dbx.DBTX) sessions.Repository
	Parts(db dbx.DBTX) parts.Repository
	Files(db dbx.DBTX) files.Repository
	Usage(db dbx.DBTX) usage.Repository
}
