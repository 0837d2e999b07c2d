// Package schedstore keeps the latest normalized schedule per area in
// memory for API consumers. Writers replace whole schedules; canonical
// events are never mutated in place.
package schedstore

import (
	"sort"
	"sync"

	"github.com/gridwatch/loadshed/core/loadshed"
)

// Store holds normalized schedules keyed by area.
type Store interface {
	Set(area string, s loadshed.Schedule)
	Get(area string) (loadshed.Schedule, bool)
	SetMonthly(area string, events []loadshed.MonthlyShedding)
	GetMonthly(area string) []loadshed.MonthlyShedding
	Areas() []string
}

// MemoryStore is the default Store implementation.
type MemoryStore struct {
	mu      sync.RWMutex
	sched   map[string]loadshed.Schedule
	monthly map[string][]loadshed.MonthlyShedding
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sched:   map[string]loadshed.Schedule{},
		monthly: map[string][]loadshed.MonthlyShedding{},
	}
}

func (s *MemoryStore) Set(area string, sched loadshed.Schedule) {
	s.mu.Lock()
	s.sched[area] = sched
	s.mu.Unlock()
}

func (s *MemoryStore) Get(area string) (loadshed.Schedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sched, ok := s.sched[area]
	return sched, ok
}

func (s *MemoryStore) SetMonthly(area string, events []loadshed.MonthlyShedding) {
	s.mu.Lock()
	s.monthly[area] = events
	s.mu.Unlock()
}

func (s *MemoryStore) GetMonthly(area string) []loadshed.MonthlyShedding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.monthly[area]
}

// Areas returns every known area in sorted order.
func (s *MemoryStore) Areas() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]struct{}{}
	for a := range s.sched {
		seen[a] = struct{}{}
	}
	for a := range s.monthly {
		seen[a] = struct{}{}
	}
	areas := make([]string, 0, len(seen))
	for a := range seen {
		areas = append(areas, a)
	}
	sort.Strings(areas)
	return areas
}
