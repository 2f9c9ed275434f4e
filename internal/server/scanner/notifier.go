package scanner

import (
	"context"

	"github.com/dmitrijs2005/deathline/internal/logging"
	"github.com/dmitrijs2005/deathline/internal/server/models"
)

// LogNotifier only records that a deadline is approaching. Delivery to the
// user (mail, push) is not implemented.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("module", "notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, d *models.Deadline) {
	n.logger.Info(ctx, "Upcoming deadline", "deadline_id", d.ID, "user_id", d.UserID, "due", d.Due)
}
