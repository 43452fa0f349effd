package store

import "sync"

// UserStore holds the registration set: every Telegram user id that ever
// started the bot. The set only grows; broadcast targets are drawn from it
// at fan-out time.
type UserStore struct {
	mu   sync.Mutex
	path string
	ids  []int64
}

// OpenUserStore loads the registration set from path.
func OpenUserStore(path string) *UserStore {
	return &UserStore{
		path: path,
		ids:  loadJSON[int64](path),
	}
}

// Add registers a user id and persists the set. Re-adding a known id is a
// no-op: the collection and its persisted content stay unchanged.
func (s *UserStore) Add(id int64) (added bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, known := range s.ids {
		if known == id {
			return false, nil
		}
	}
	s.ids = append(s.ids, id)
	err = saveJSON(s.path, s.ids)
	logSaveErr(s.path, err)
	return true, err
}

// All returns a snapshot of the registered ids.
func (s *UserStore) All() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len reports the number of registered users.
func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
