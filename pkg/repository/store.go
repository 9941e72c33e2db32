package repository

import (
	"slices"
	"sync"

	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

// Store holds characters keyed by identifier. Entries are only ever added or
// overwritten, never evicted.
type Store interface {
	// Get returns the character stored under id.
	Get(id int) (rmapi.Character, bool)
	// Put stores character under id.
	Put(id int, character rmapi.Character)
	// PutAll stores every character under its own ID.
	PutAll(characters []rmapi.Character)
	// Len returns the number of stored characters.
	Len() int
	// All returns every stored character in ascending key order.
	All() []rmapi.Character
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[int]rmapi.Character
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[int]rmapi.Character),
	}
}

// Get implements Store.Get.
func (s *MemoryStore) Get(id int) (rmapi.Character, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	character, ok := s.items[id]

	return character, ok
}

// Put implements Store.Put.
func (s *MemoryStore) Put(id int, character rmapi.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[id] = character
}

// PutAll implements Store.PutAll.
func (s *MemoryStore) PutAll(characters []rmapi.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, character := range characters {
		s.items[character.ID] = character
	}
}

// Len implements Store.Len.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// All implements Store.All.
func (s *MemoryStore) All() []rmapi.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	characters := make([]rmapi.Character, 0, len(ids))
	for _, id := range ids {
		characters = append(characters, s.items[id])
	}

	return characters
}
