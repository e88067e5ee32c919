package artist

import "sync"

// Store is the set of selected records, keyed by ID and kept in insertion order.
// Every stored record has Selected set.
type Store struct {
	mu      sync.RWMutex
	records []Record
	index   map[int]int // id -> position in records
}

// NewStore creates an empty selection store.
func NewStore() *Store {
	return &Store{index: make(map[int]int)}
}

// Save adds r to the store and returns the stored copy. Saving an ID that is
// already present replaces the stored record without changing its position.
func (s *Store) Save(r Record) Record {
	r.Selected = true

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[r.ID]; ok {
		s.records[i] = r
		return r
	}
	s.index[r.ID] = len(s.records)
	s.records = append(s.records, r)
	return r
}

// Remove deletes the record with id. Absent ids are ignored.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.records); j++ {
		s.index[s.records[j].ID] = j
	}
}

// Contains reports whether id is selected.
func (s *Store) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// IDs returns the set of selected ids.
func (s *Store) IDs() map[int]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make(map[int]struct{}, len(s.records))
	for _, r := range s.records {
		ids[r.ID] = struct{}{}
	}
	return ids
}

// List returns a copy of the selected records in the order they were saved.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of selected records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear removes every record.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.index = make(map[int]int)
}
