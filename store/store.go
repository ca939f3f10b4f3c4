package store

import (
	"sync"
	"time"

	"github.com/krisalay/file-content-cache/eviction"
	"github.com/krisalay/file-content-cache/types"
)

/*
This file defines the recency store: a capacity-bounded map from canonical
path to cache entry, ordered by access recency.

The map holds the data, the eviction policy holds the recency bookkeeping.
Every successful Get or Put counts as a use and promotes the key; when an
insert would push the store past its capacity, exactly one entry — the one
untouched the longest — is evicted first.

A single mutex guards the whole store. All operations are O(1) (Put may
additionally trigger one O(1) eviction), so one lock is cheap enough for
the read-through path and makes Clear atomic with respect to in-flight
puts.
*/

// EvictHook is called after an entry has been evicted for capacity.
// It runs with the store lock held and must not call back into the store.
type EvictHook func(key string, ent *types.FileEntry)

// RecencyStore is a key → FileEntry map with strict LRU-style eviction.
type RecencyStore struct {
	mu sync.Mutex

	// entries holds the actual data.
	entries map[string]*types.FileEntry

	// policy tracks access order and picks the eviction victim.
	policy eviction.Policy

	// maxSize is the capacity bound; never below 1.
	maxSize int

	// onEvict, if set, observes capacity evictions (not explicit removes).
	onEvict EvictHook
}

// New creates a RecencyStore bounded to maxSize entries, using the given
// eviction policy. A maxSize below 1 is raised to 1.
func New(maxSize int, policy eviction.Policy, onEvict EvictHook) *RecencyStore {
	if maxSize < 1 {
		maxSize = 1
	}
	return &RecencyStore{
		entries: make(map[string]*types.FileEntry),
		policy:  policy,
		maxSize: maxSize,
		onEvict: onEvict,
	}
}

// Get returns the entry for key if present and promotes the key to the
// most-recently-used position. A miss has no side effect.
func (s *RecencyStore) Get(key string) (*types.FileEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	s.policy.OnGet(key)
	return ent, true
}

// Put inserts or overwrites the entry for key and promotes it to the
// most-recently-used position. If the insert would exceed capacity, the
// least-recently-used entry is evicted first. A put can exceed capacity by
// at most one entry, so a single eviction always suffices.
func (s *RecencyStore) Put(key string, ent *types.FileEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxSize {
		victim := s.policy.Evict()
		if victim != "" {
			evicted := s.entries[victim]
			delete(s.entries, victim)
			if s.onEvict != nil {
				s.onEvict(victim, evicted)
			}
		}
	}

	s.entries[key] = ent
	s.policy.OnPut(key)
}

// Touch updates the entry's last read time and promotes the key to the
// most-recently-used position, as one atomic step. Touching a key that is
// no longer present is a no-op and reports false, so a late fresh hit can
// never resurrect an entry past a concurrent Remove or Clear.
func (s *RecencyStore) Touch(key string, readTime time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		return false
	}
	ent.LastReadTime = readTime
	s.policy.OnGet(key)
	return true
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (s *RecencyStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.policy.Remove(key)
}

// Clear removes all entries and resets the recency bookkeeping.
func (s *RecencyStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*types.FileEntry)
	s.policy.Reset()
}

// Len returns the number of entries currently stored.
func (s *RecencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Contains reports presence without counting as a use. It is a pure peek:
// interleaving Contains calls never changes eviction order, which keeps it
// safe for monitoring.
func (s *RecencyStore) Contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

// Range calls f for every entry. Like Contains it does not touch recency.
// f runs with the store lock held and must not call back into the store.
func (s *RecencyStore) Range(f func(ent *types.FileEntry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ent := range s.entries {
		f(ent)
	}
}
