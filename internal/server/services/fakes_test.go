package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/deathline/internal/common"
	"github.com/dmitrijs2005/deathline/internal/dbx"
	"github.com/dmitrijs2005/deathline/internal/logging"
	"github.com/dmitrijs2005/deathline/internal/server/models"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/deadlines"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/users"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// memUsers keeps users in insertion order and, like the table, does not
// enforce unique emails.
type memUsers struct {
	mu     sync.Mutex
	rows   []models.User
	nextID int64
	err    error
}

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	u.ID = m.nextID
	m.rows = append(m.rows, *u)
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.rows {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	if err == common.ErrorNotFound {
		return false, nil
	}
	return err == nil, err
}

type memDeadlines struct {
	mu     sync.Mutex
	rows   []models.Deadline
	nextID int64
	err    error
}

func (m *memDeadlines) Create(_ context.Context, d *models.Deadline) (*models.Deadline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	d.ID = m.nextID
	m.rows = append(m.rows, *d)
	return d, nil
}

func (m *memDeadlines) FindByUserID(_ context.Context, userID int64) ([]*models.Deadline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*models.Deadline, 0)
	for _, d := range m.rows {
		if d.UserID == userID {
			row := d
			out = append(out, &row)
		}
	}
	return out, nil
}

func (m *memDeadlines) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	kept := m.rows[:0]
	for _, d := range m.rows {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	m.rows = kept
	return nil
}

func (m *memDeadlines) FindDueBetween(_ context.Context, start, end time.Time) ([]*models.Deadline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Deadline, 0)
	for _, d := range m.rows {
		if !d.Due.Before(start) && !d.Due.After(end) {
			row := d
			out = append(out, &row)
		}
	}
	return out, nil
}

func (m *memDeadlines) Update(_ context.Context, d *models.Deadline) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.rows {
		if m.rows[i].ID == d.ID {
			m.rows[i].Name = d.Name
			m.rows[i].Description = d.Description
			m.rows[i].Due = d.Due
		}
	}
	return nil
}

type fakeRepoManager struct {
	u *memUsers
	d *memDeadlines
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: &memUsers{}, d: &memDeadlines{}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.u }
func (m *fakeRepoManager) Deadlines(dbx.DBTX) deadlines.Repository     { return m.d }
