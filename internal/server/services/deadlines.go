package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deathline/internal/dbx"
	"github.com/dmitrijs2005/deathline/internal/server/models"
	"github.com/dmitrijs2005/deathline/internal/server/repositories/repomanager"
)

// DeadlineService lists, creates and deletes deadlines on behalf of a user.
// None of its operations check that the caller owns the deadline.
type DeadlineService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewDeadlineService(db dbx.DBTX, m repomanager.RepositoryManager) *DeadlineService {
	return &DeadlineService{db: db, repomanager: m, now: time.Now}
}

// ListForUser returns the user's deadlines due strictly after from and
// strictly before to. A nil bound removes that side of the filter.
func (s *DeadlineService) ListForUser(ctx context.Context, userID int64, from, to *time.Time) ([]*models.Deadline, error) {
	repo := s.repomanager.Deadlines(s.db)

	all, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing deadlines: %w", err)
	}

	return filterByDue(all, from, to), nil
}

// CreateForUser stores a new deadline for userID, stamping its creation
// instant with the current time. Name, description and due instant are taken
// from in; its ID, UserID and CreatedAt are ignored.
func (s *DeadlineService) CreateForUser(ctx context.Context, userID int64, in *models.Deadline) (*models.Deadline, error) {
	d := &models.Deadline{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Due:         in.Due,
		CreatedAt:   s.now(),
	}

	repo := s.repomanager.Deadlines(s.db)
	created, err := repo.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("error creating deadline: %w", err)
	}

	return created, nil
}

// Delete removes the deadline by id. Deleting a missing id succeeds.
func (s *DeadlineService) Delete(ctx context.Context, deadlineID int64) error {
	repo := s.repomanager.Deadlines(s.db)
	if err := repo.DeleteByID(ctx, deadlineID); err != nil {
		return fmt.Errorf("error deleting deadline: %w", err)
	}
	return nil
}

// Update overwrites name, description and due instant by id.
// TODO: no HTTP route calls this yet; the update endpoint still needs an
// ownership rule before it can be wired.
func (s *DeadlineService) Update(ctx context.Context, d *models.Deadline) error {
	repo := s.repomanager.Deadlines(s.db)
	if err := repo.Update(ctx, d); err != nil {
		return fmt.Errorf("error updating deadline: %w", err)
	}
	return nil
}

func filterByDue(items []*models.Deadline, from, to *time.Time) []*models.Deadline {
	if from == nil && to == nil {
		return items
	}

	result := make([]*models.Deadline, 0, len(items))
	for _, d := range items {
		if from != nil && !d.Due.After(*from) {
			continue
		}
		if to != nil && !d.Due.Before(*to) {
			continue
		}
		result = append(result, d)
	}
	return result
}
