// Package scanner periodically selects deadlines that fall due within a
// look-ahead window and hands each one to a Notifier.
//
// A deadline that stays inside the rolling window across several ticks is
// handed over on every one of them; callers that need at-most-once delivery
// have to de-duplicate in the Notifier.
package scanner

import (
	"context"
	"time"

	"github.com/dmitrijs2005/deathline/internal/logging"
	"github.com/dmitrijs2005/deathline/internal/server/models"
)

const (
	DefaultInterval = 30 * time.Minute
	DefaultWindow   = 30 * time.Minute
)

// Source is the range query the scanner runs on every tick. Both bounds are
// inclusive.
type Source interface {
	FindDueBetween(ctx context.Context, start, end time.Time) ([]*models.Deadline, error)
}

// Notifier receives each candidate deadline.
type Notifier interface {
	Notify(ctx context.Context, deadline *models.Deadline)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(ctx context.Context, deadline *models.Deadline)

func (f NotifierFunc) Notify(ctx context.Context, deadline *models.Deadline) { f(ctx, deadline) }

type Scanner struct {
	source   Source
	notifier Notifier
	interval time.Duration
	window   time.Duration
	now      func() time.Time
	logger   logging.Logger
}

// New builds a Scanner. Non-positive interval or window fall back to the
// 30 minute defaults.
func New(source Source, notifier Notifier, interval, window time.Duration, logger logging.Logger) *Scanner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Scanner{
		source:   source,
		notifier: notifier,
		interval: interval,
		window:   window,
		now:      time.Now,
		logger:   logger.With("module", "scanner"),
	}
}

// TickAt runs one scan as if the current time were now: every deadline due
// in [now, now+window] is passed to the notifier exactly once. It returns the
// number of deadlines handed over.
func (s *Scanner) TickAt(ctx context.Context, now time.Time) (int, error) {
	threshold := now.Add(s.window)

	upcoming, err := s.source.FindDueBetween(ctx, now, threshold)
	if err != nil {
		return 0, err
	}

	for _, d := range upcoming {
		s.notifier.Notify(ctx, d)
	}

	return len(upcoming), nil
}

// Run ticks immediately and then every interval until ctx is done. A failed
// tick is logged and the next one runs on schedule.
func (s *Scanner) Run(ctx context.Context) {
	s.logger.Info(ctx, "Starting deadline scanner", "interval", s.interval.String(), "window", s.window.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.tick(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping deadline scanner...")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scanner) tick(ctx context.Context) {
	s.logger.Info(ctx, "Checking for upcoming deadlines")

	n, err := s.TickAt(ctx, s.now())
	if err != nil {
		s.logger.Error(ctx, "deadline scan failed", "error", err.Error())
		return
	}

	s.logger.Info(ctx, "Deadline scan finished", "candidates", n)
}
