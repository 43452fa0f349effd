// Package sweeper prunes expired exam records on a fixed interval.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/m3rciful/classbot/bot/store"
	"github.com/m3rciful/classbot/core/logger"
)

// DefaultInterval is how often the sweep runs when not configured.
const DefaultInterval = time.Hour

// Sweeper removes exam records whose date is strictly in the past.
type Sweeper struct {
	exams    *store.ExamStore
	interval time.Duration
}

// New builds a Sweeper; interval <= 0 falls back to DefaultInterval.
func New(exams *store.ExamStore, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{exams: exams, interval: interval}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	s.Sweep(time.Now())
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}

// Sweep removes expired records and persists the collection once, whether
// or not anything was removed. Records with unparsable dates stay.
func (s *Sweeper) Sweep(now time.Time) int {
	removed := s.exams.RemoveExpired(now)
	logger.Info(logger.Background(), "svc.sweeper", "sweep",
		slog.Int("removed", removed),
		slog.Int("count", s.exams.Len()),
	)
	return removed
}
