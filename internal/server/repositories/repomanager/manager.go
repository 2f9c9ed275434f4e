package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/deathline/internal/dbx"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/deadlines"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Deadlines(db dbx.DBTX) deadlines.Repository
}
