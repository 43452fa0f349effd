package sweeper

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/m3rciful/classbot/bot/domain"
	"github.com/m3rciful/classbot/bot/store"
)

func TestSweepRemovesOnlyPastDates(t *testing.T) {
	exams := store.OpenExamStore(filepath.Join(t.TempDir(), "exams.json"), 0)
	exams.Add(domain.NewExamRecord("gone", "2026-08-27", "09:00", ""))
	exams.Add(domain.NewExamRecord("also gone", "2026-08-28", "09:00", ""))
	exams.Add(domain.NewExamRecord("today", "2026-08-29", "09:00", ""))
	exams.Add(domain.NewExamRecord("future", "2026-09-15", "09:00", ""))

	s := New(exams, time.Hour)
	now := time.Date(2026, 8, 29, 0, 30, 0, 0, time.Local)
	if removed := s.Sweep(now); removed != 2 {
		t.Fatalf("removed = %d, expected 2", removed)
	}
	if got := exams.Len(); got != 2 {
		t.Fatalf("len = %d, expected 2", got)
	}
	// A second sweep on the same day removes nothing further.
	if removed := s.Sweep(now); removed != 0 {
		t.Fatalf("second sweep removed %d", removed)
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	s := New(store.OpenExamStore(filepath.Join(t.TempDir(), "exams.json"), 0), 0)
	if s.interval != DefaultInterval {
		t.Fatalf("interval = %v, expected %v", s.interval, DefaultInterval)
	}
}
