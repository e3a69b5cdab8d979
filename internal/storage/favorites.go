package storage

import (
	"sort"
	"sync"
)

// FavoritesStore tracks which restaurants the user marked as favorites.
type FavoritesStore struct {
	mu  sync.Mutex
	ids map[string]bool
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{ids: make(map[string]bool)}
}

// Toggle flips the favorite flag and reports the new state.
func (s *FavoritesStore) Toggle(restaurantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[restaurantID] {
		delete(s.ids, restaurantID)
		return false
	}
	s.ids[restaurantID] = true
	return true
}

func (s *FavoritesStore) IsFavorite(restaurantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[restaurantID]
}

func (s *FavoritesStore) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
