// Package inventory owns the enriched item collection and the derived
// views computed from it. The Store is the only mutator of the
// collection; everything else reads through it.
package inventory

import (
	"sync"

	"github.com/Daniaarav2005/Meal-E/internal/domain"
	"github.com/Daniaarav2005/Meal-E/internal/logger"
)

// Compile-time interface check.
var _ domain.FridgeReader = (*Store)(nil)

// Store holds the current inventory in memory. Safe for concurrent
// access; fetches replace the collection wholesale, nothing merges.
type Store struct {
	mu        sync.RWMutex
	items     []domain.Item
	dismissed map[string]struct{}
	gen       uint64 // newest fetch generation handed out
	log       *logger.Logger
}

// NewStore creates an empty inventory store.
func NewStore(log *logger.Logger) *Store {
	return &Store{
		dismissed: make(map[string]struct{}),
		log:       log,
	}
}

// BeginFetch stamps a new fetch attempt. Pass the returned generation to
// Replace so a slow response cannot clobber a newer one.
func (s *Store) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.log.Debug("fetch generation %d issued", s.gen)
	return s.gen
}

// Replace swaps in a freshly fetched collection. Returns false, leaving
// the store untouched, when a newer fetch has been issued since gen was
// handed out. A successful replace clears session dismissals: the new
// items carry new local ids.
func (s *Store) Replace(gen uint64, items []domain.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.log.Warn("discarding stale fetch result (gen=%d, newest=%d)", gen, s.gen)
		return false
	}

	s.items = items
	s.dismissed = make(map[string]struct{})
	s.log.Info("inventory replaced: %d items (gen=%d)", len(items), gen)
	return true
}

// Items returns a copy of the current collection in fetch order.
func (s *Store) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of items held.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the item with the given local id.
func (s *Store) Get(id string) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, domain.ErrNotFound
}

// Remove deletes an item by local id and clears any dismissal flag for
// it. Returns the removed item so the caller can correlate the backend
// delete.
func (s *Store) Remove(id string) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			delete(s.dismissed, id)
			s.log.Debug("removed item %s (%s)", id, it.Name)
			return it, nil
		}
	}
	return domain.Item{}, domain.ErrNotFound
}

// DismissCheckIn suppresses an item from the check-in list for the rest
// of the session. The item itself stays in the inventory.
func (s *Store) DismissCheckIn(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dismissed[id] = struct{}{}
	s.log.Debug("dismissed check-in for %s", id)
}
