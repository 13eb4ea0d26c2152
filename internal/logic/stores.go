package logic

import (
	"strconv"
	"sync"

	"pickwise/internal/domain"
)

// EntryStore is the ordered list of pickable entries. It resolves values
// to entries according to its value key.
type EntryStore struct {
	mu       sync.RWMutex
	entries  []*domain.Entry
	byText   map[string]int // text -> first index
	valueKey domain.ValueKey
}

// NewEntryStore creates an empty store deriving values by key
func NewEntryStore(key domain.ValueKey) *EntryStore {
	if !key.Valid() {
		key = domain.ValueKeyIndex
	}
	return &EntryStore{
		byText:   make(map[string]int),
		valueKey: key,
	}
}

// ValueKey returns how values are derived
func (s *EntryStore) ValueKey() domain.ValueKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valueKey
}

// SetValueKey changes how values are derived. Selections keyed by the old
// scheme must be re-derived by the owner.
func (s *EntryStore) SetValueKey(key domain.ValueKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !key.Valid() || key == s.valueKey {
		return false
	}
	s.valueKey = key
	return true
}

// Add appends entries
func (s *EntryStore) Add(entries ...*domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		if e == nil {
			continue
		}
		if _, ok := s.byText[e.Text]; !ok {
			s.byText[e.Text] = len(s.entries)
		}
		s.entries = append(s.entries, e)
	}
}

// Remove deletes the entry at index
func (s *EntryStore) Remove(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.entries) {
		return
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.reindex()
}

func (s *EntryStore) reindex() {
	s.byText = make(map[string]int, len(s.entries))
	for i, e := range s.entries {
		if _, ok := s.byText[e.Text]; !ok {
			s.byText[e.Text] = i
		}
	}
}

// At returns the entry at index
func (s *EntryStore) At(index int) *domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.entries) {
		return nil
	}
	return s.entries[index]
}

// All returns a copy of the entries
func (s *EntryStore) All() []*domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *EntryStore) ValueToIndex(value string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valueToIndex(value)
}

func (s *EntryStore) valueToIndex(value string) int {
	if s.valueKey == domain.ValueKeyText {
		if i, ok := s.byText[value]; ok {
			return i
		}
		return -1
	}

	i, err := strconv.Atoi(value)
	if err != nil || i < 0 || i >= len(s.entries) {
		return -1
	}
	return i
}

func (s *EntryStore) IndexToValue(index int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.entries) {
		return "", false
	}
	if s.valueKey == domain.ValueKeyText {
		return s.entries[index].Text, true
	}
	return strconv.Itoa(index), true
}

func (s *EntryStore) ValueToItem(value string) (*domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.valueToIndex(value)
	if i < 0 {
		return nil, false
	}
	return s.entries[i], true
}

func (s *EntryStore) IndexOf(entry *domain.Entry) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, e := range s.entries {
		if e == entry {
			return i
		}
	}
	return -1
}
