package deadlines

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/deathline/internal/server/models"
)

// InMemoryRepository keeps deadlines in process memory, in insertion order.
// It follows the same contract as PostgresRepository: range queries are
// inclusive and delete/update of a missing id are no-ops.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []models.Deadline
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(_ context.Context, deadline *models.Deadline) (*models.Deadline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	deadline.ID = r.nextID
	r.rows = append(r.rows, *deadline)

	return deadline, nil
}

func (r *InMemoryRepository) FindByUserID(_ context.Context, userID int64) ([]*models.Deadline, error) {
	return r.filter(func(d *models.Deadline) bool { return d.UserID == userID }), nil
}

func (r *InMemoryRepository) FindDueBetween(_ context.Context, start, end time.Time) ([]*models.Deadline, error) {
	return r.filter(func(d *models.Deadline) bool {
		return !d.Due.Before(start) && !d.Due.After(end)
	}), nil
}

func (r *InMemoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) Update(_ context.Context, deadline *models.Deadline) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == deadline.ID {
			r.rows[i].Name = deadline.Name
			r.rows[i].Description = deadline.Description
			r.rows[i].Due = deadline.Due
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) filter(keep func(d *models.Deadline) bool) []*models.Deadline {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Deadline, 0)
	for i := range r.rows {
		if keep(&r.rows[i]) {
			d := r.rows[i]
			result = append(result, &d)
		}
	}
	return result
}
