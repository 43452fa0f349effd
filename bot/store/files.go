package store

import (
	"sync"

	"github.com/m3rciful/classbot/bot/domain"
)

// FileStore holds submitted-file records in insertion order.
type FileStore struct {
	mu      sync.Mutex
	path    string
	records []domain.SubmittedFile
}

// OpenFileStore loads submitted-file records from path. Records whose
// subject is no longer on the fixed list (the collection file can be
// edited by hand) are relabelled with domain.UnknownSubject so they stay
// visible to the owner instead of vanishing from every subject view.
func OpenFileStore(path string) *FileStore {
	records := loadJSON[domain.SubmittedFile](path)
	for i := range records {
		if !domain.IsSubject(records[i].Subject) {
			records[i].Subject = domain.UnknownSubject
		}
	}
	return &FileStore{
		path:    path,
		records: records,
	}
}

// Add appends a record and persists.
func (s *FileStore) Add(rec domain.SubmittedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	err := saveJSON(s.path, s.records)
	logSaveErr(s.path, err)
	return err
}

// All returns a snapshot of every record.
func (s *FileStore) All() []domain.SubmittedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SubmittedFile, len(s.records))
	copy(out, s.records)
	return out
}

// BySubject returns the records submitted under the given subject.
func (s *FileStore) BySubject(subject string) []domain.SubmittedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.SubmittedFile
	for _, rec := range s.records {
		if rec.Subject == subject {
			out = append(out, rec)
		}
	}
	return out
}

// ByDate returns the records whose submission date equals date (YYYY-MM-DD).
func (s *FileStore) ByDate(date string) []domain.SubmittedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.SubmittedFile
	for _, rec := range s.records {
		if rec.SubmissionDate == date {
			out = append(out, rec)
		}
	}
	return out
}

// ByOwner returns the records submitted by the given display name, in
// insertion order. Positions into this slice are what RemoveOwned accepts.
func (s *FileStore) ByOwner(owner string) []domain.SubmittedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.SubmittedFile
	for _, rec := range s.records {
		if rec.SubmittedBy == owner {
			out = append(out, rec)
		}
	}
	return out
}

// RemoveOwned deletes the i-th (zero-based) record owned by the given
// display name and persists. It returns the removed record.
func (s *FileStore) RemoveOwned(owner string, i int) (domain.SubmittedFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 {
		return domain.SubmittedFile{}, false
	}
	seen := 0
	for idx, rec := range s.records {
		if rec.SubmittedBy != owner {
			continue
		}
		if seen == i {
			s.records = append(s.records[:idx], s.records[idx+1:]...)
			err := saveJSON(s.path, s.records)
			logSaveErr(s.path, err)
			return rec, true
		}
		seen++
	}
	return domain.SubmittedFile{}, false
}

// Len reports the number of records.
func (s *FileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
