package store

import (
	"sort"
	"sync"

	"github.com/borgmon/kitchen-timer/pkg/models"
	"github.com/google/uuid"
)

// ItemStore holds the scheduled items. It is memory-only.
type ItemStore struct {
	mu sync.RWMutex

	// Map of item ID to item
	items map[models.ItemID]*models.Item

	// Last sequence number handed out by Add
	seq uint64
}

// NewItemStore creates an empty ItemStore
func NewItemStore() *ItemStore {
	return &ItemStore{
		items: make(map[models.ItemID]*models.Item),
	}
}

// Add creates a new item with a fresh ID. Negative minutes are clamped to 0;
// callers are expected to have validated the input already.
func (s *ItemStore) Add(name string, minutes int) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if minutes < 0 {
		minutes = 0
	}

	s.seq++
	item := &models.Item{
		ID:              models.ItemID(uuid.New().String()),
		Name:            name,
		DurationSeconds: models.MinutesToSeconds(minutes),
		Seq:             s.seq,
	}
	s.items[item.ID] = item

	return *item
}

// Edit replaces name and duration of the item in place.
// Returns false if no item has the given ID.
func (s *ItemStore) Edit(id models.ItemID, name string, minutes int) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		return models.Item{}, false
	}

	if minutes < 0 {
		minutes = 0
	}
	item.Name = name
	item.DurationSeconds = models.MinutesToSeconds(minutes)

	return *item, true
}

// Remove deletes the item. Returns false if it was not present.
func (s *ItemStore) Remove(id models.ItemID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	return true
}

// Get returns a copy of the item with the given ID
func (s *ItemStore) Get(id models.ItemID) (models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return models.Item{}, false
	}
	return *item, true
}

// List returns copies of all items in creation order
func (s *ItemStore) List() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, *item)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Seq < result[j].Seq
	})
	return result
}

// Len returns the number of items
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// LongestDuration returns the largest item duration in seconds, 0 if empty
func (s *ItemStore) LongestDuration() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	longest := 0
	for _, item := range s.items {
		if item.DurationSeconds > longest {
			longest = item.DurationSeconds
		}
	}
	return longest
}
