package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/deathline/internal/dbx"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/deadlines"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves process-local repositories. The DBTX
// passed to Users and Deadlines is ignored and every call returns the same
// store, so data lives as long as the manager.
type InMemoryRepositoryManager struct {
	users     *users.InMemoryRepository
	deadlines *deadlines.InMemoryRepository
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Deadlines(dbx.DBTX) deadlines.Repository {
	return m.deadlines
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:     users.NewInMemoryRepository(),
		deadlines: deadlines.NewInMemoryRepository(),
	}
}
