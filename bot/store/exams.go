package store

import (
	"sync"
	"time"

	"github.com/m3rciful/classbot/bot/domain"
)

// ExamStore holds exam records in insertion order, which is also display
// order. A retention cap (0 = unlimited) optionally drops the oldest
// record when a new one is added.
type ExamStore struct {
	mu          sync.Mutex
	path        string
	maxRetained int
	records     []domain.ExamRecord
}

// OpenExamStore loads exam records from path. maxRetained <= 0 disables
// the retention cap.
func OpenExamStore(path string, maxRetained int) *ExamStore {
	return &ExamStore{
		path:        path,
		maxRetained: maxRetained,
		records:     loadJSON[domain.ExamRecord](path),
	}
}

// Add appends a record, applies the retention cap, and persists.
func (s *ExamStore) Add(rec domain.ExamRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	if s.maxRetained > 0 {
		for len(s.records) > s.maxRetained {
			s.records = s.records[1:]
		}
	}
	err := saveJSON(s.path, s.records)
	logSaveErr(s.path, err)
	return err
}

// All returns a snapshot of the records in display order.
func (s *ExamStore) All() []domain.ExamRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ExamRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record at the given zero-based position.
func (s *ExamStore) Get(i int) (domain.ExamRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.records) {
		return domain.ExamRecord{}, false
	}
	return s.records[i], true
}

// Remove deletes the record at the given zero-based position and persists.
func (s *ExamStore) Remove(i int) (domain.ExamRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.records) {
		return domain.ExamRecord{}, false
	}
	rec := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	err := saveJSON(s.path, s.records)
	logSaveErr(s.path, err)
	return rec, true
}

// RemoveExpired drops every record whose date is strictly before the
// current day and persists the collection once, whether or not anything
// was removed. Records with unparsable dates are left in place.
func (s *ExamStore) RemoveExpired(now time.Time) (removed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	for _, rec := range s.records {
		expired, ok := rec.Expired(now)
		if ok && expired {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept
	err := saveJSON(s.path, s.records)
	logSaveErr(s.path, err)
	return removed
}

// Len reports the number of retained records.
func (s *ExamStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
