package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/deathline/internal/common"
	"github.com/dmitrijs2005/deathline/internal/server/models"
)

// InMemoryRepository keeps users in process memory. Ids start at 1.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   []models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = r.nextID
	r.rows = append(r.rows, *user)

	return user, nil
}

func (r *InMemoryRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}
