package deadlines

import (
	"context"
	"time"

	"github.com/dmitrijs2005/deathline/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, deadline *models.Deadline) (*models.Deadline, error)
	FindByUserID(ctx context.Context, userID int64) ([]*models.Deadline, error)
	DeleteByID(ctx context.Context, id int64) error
	FindDueBetween(ctx context.Context, start, end time.Time) ([]*models.Deadline, error)
	Update(ctx context.Context, deadline *models.Deadline) error
}
