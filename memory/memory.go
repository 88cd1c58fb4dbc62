// Package memory provides translation-memory storage and fuzzy matching.
package memory

import (
	"sync"

	"github.com/ZaguanLabs/goweft"
)

// Store is the interface for translation-memory backends.
type Store interface {
	// Add stores one translation unit, replacing any unit with the same
	// source text and target language.
	Add(unit goweft.MemoryUnit) error

	// Units returns every stored unit whose target language matches the
	// given language exactly or shares its base-language prefix.
	Units(targetLang string) ([]goweft.MemoryUnit, error)
}

// Dumper is implemented by stores that can enumerate all units, which
// enables export.
type Dumper interface {
	All() ([]goweft.MemoryUnit, error)
}

// InMemoryStore is a thread-safe in-memory translation-memory store.
type InMemoryStore struct {
	mu    sync.RWMutex
	units []goweft.MemoryUnit
	index map[string]int // MemoryKey → position in units
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{index: make(map[string]int)}
}

// Add stores a unit, replacing an existing unit for the same source
// text and target language.
func (s *InMemoryStore) Add(unit goweft.MemoryUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := goweft.MemoryKey(unit.SourceText, unit.TargetLang)
	if i, ok := s.index[key]; ok {
		s.units[i] = unit
		return nil
	}
	s.index[key] = len(s.units)
	s.units = append(s.units, unit)
	return nil
}

// Units returns the stored units qualifying for the target language, in
// insertion order.
func (s *InMemoryStore) Units(targetLang string) ([]goweft.MemoryUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []goweft.MemoryUnit
	for _, u := range s.units {
		if goweft.SameLanguage(u.TargetLang, targetLang) {
			out = append(out, u)
		}
	}
	return out, nil
}

// All returns every stored unit in insertion order.
func (s *InMemoryStore) All() ([]goweft.MemoryUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]goweft.MemoryUnit, len(s.units))
	copy(out, s.units)
	return out, nil
}

// Len returns the number of stored units.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.units)
}

// Clear removes all units.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = nil
	s.index = make(map[string]int)
}

// Verify interface compliance.
var (
	_ Store  = (*InMemoryStore)(nil)
	_ Dumper = (*InMemoryStore)(nil)
)
