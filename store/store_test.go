package store

import (
	"sync"
	"testing"
	"time"

	"github.com/krisalay/file-content-cache/eviction"
	"github.com/krisalay/file-content-cache/types"
)

func entry(key, content string) *types.FileEntry {
	return &types.FileEntry{Key: key, Content: content}
}

func newTestStore(maxSize int) *RecencyStore {
	return New(maxSize, eviction.NewPolicy(eviction.LRU), nil)
}

func TestPutAndGet(t *testing.T) {
	s := newTestStore(10)
	s.Put("/a", entry("/a", "alpha"))

	ent, ok := s.Get("/a")
	if !ok || ent.Content != "alpha" {
		t.Fatalf("expected alpha, got ok=%v ent=%v", ok, ent)
	}
	if _, ok := s.Get("/missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}
	if s.Len() != 1 {
		t.Fatalf("expected Len=1, got %d", s.Len())
	}
}

func TestOverwriteKeepsSingleEntry(t *testing.T) {
	s := newTestStore(10)
	s.Put("/a", entry("/a", "v1"))
	s.Put("/a", entry("/a", "v2"))

	if s.Len() != 1 {
		t.Fatalf("expected Len=1 after overwrite, got %d", s.Len())
	}
	ent, _ := s.Get("/a")
	if ent.Content != "v2" {
		t.Fatalf("expected v2, got %q", ent.Content)
	}
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	s := newTestStore(2)
	s.Put("/a", entry("/a", "a"))
	s.Put("/b", entry("/b", "b"))

	// touch /a so /b becomes the victim
	s.Get("/a")

	s.Put("/c", entry("/c", "c"))

	if s.Contains("/b") {
		t.Fatalf("expected /b to be evicted")
	}
	if !s.Contains("/a") || !s.Contains("/c") {
		t.Fatalf("expected /a and /c to survive")
	}
	if s.Len() != 2 {
		t.Fatalf("expected Len=2, got %d", s.Len())
	}
}

func TestEvictHookObservesVictim(t *testing.T) {
	var mu sync.Mutex
	var victims []string

	s := New(1, eviction.NewPolicy(eviction.LRU),
		func(key string, ent *types.FileEntry) {
			mu.Lock()
			victims = append(victims, key)
			mu.Unlock()
			if ent == nil {
				t.Errorf("expected evicted entry, got nil")
			}
		})

	s.Put("/a", entry("/a", "a"))
	s.Put("/b", entry("/b", "b"))

	if len(victims) != 1 || victims[0] != "/a" {
		t.Fatalf("expected hook to see /a, got %v", victims)
	}
}

func TestTouchUpdatesReadTimeAndPromotes(t *testing.T) {
	s := newTestStore(2)
	s.Put("/a", entry("/a", "a"))
	s.Put("/b", entry("/b", "b"))

	// touching /a makes /b the eviction victim
	stamp := time.Now()
	if !s.Touch("/a", stamp) {
		t.Fatalf("expected Touch to find /a")
	}

	ent, _ := s.Get("/a")
	if !ent.LastReadTime.Equal(stamp) {
		t.Fatalf("expected LastReadTime %v, got %v", stamp, ent.LastReadTime)
	}

	s.Put("/c", entry("/c", "c"))
	if s.Contains("/b") {
		t.Fatalf("expected /b to be evicted after /a was touched")
	}
}

func TestTouchMissingKeyIsNoop(t *testing.T) {
	s := newTestStore(2)
	s.Put("/a", entry("/a", "a"))

	s.Remove("/a")

	// a late touch must not resurrect the removed entry
	if s.Touch("/a", time.Now()) {
		t.Fatalf("expected Touch to report absence")
	}
	if s.Contains("/a") {
		t.Fatalf("expected /a to stay removed")
	}
	if s.Len() != 0 {
		t.Fatalf("expected Len=0, got %d", s.Len())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore(10)
	s.Put("/a", entry("/a", "a"))

	s.Remove("/a")
	s.Remove("/a") // second remove is a no-op

	if s.Contains("/a") {
		t.Fatalf("expected /a gone")
	}
	if s.Len() != 0 {
		t.Fatalf("expected Len=0, got %d", s.Len())
	}
}

func TestClearResetsRecency(t *testing.T) {
	s := newTestStore(2)
	s.Put("/a", entry("/a", "a"))
	s.Put("/b", entry("/b", "b"))

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected Len=0 after clear, got %d", s.Len())
	}

	// refilling after clear must evict based on fresh bookkeeping
	s.Put("/x", entry("/x", "x"))
	s.Put("/y", entry("/y", "y"))
	s.Put("/z", entry("/z", "z"))

	if s.Contains("/x") {
		t.Fatalf("expected /x evicted after refill")
	}
	if !s.Contains("/y") || !s.Contains("/z") {
		t.Fatalf("expected /y and /z cached")
	}
}

func TestContainsDoesNotPromote(t *testing.T) {
	s := newTestStore(2)
	s.Put("/a", entry("/a", "a"))
	s.Put("/b", entry("/b", "b"))

	// peeking at /a must not rescue it from eviction
	for i := 0; i < 5; i++ {
		s.Contains("/a")
	}

	s.Put("/c", entry("/c", "c"))

	if s.Contains("/a") {
		t.Fatalf("expected /a evicted despite peeks")
	}
	if !s.Contains("/b") || !s.Contains("/c") {
		t.Fatalf("expected /b and /c cached")
	}
}

func TestMaxSizeFloor(t *testing.T) {
	s := New(0, eviction.NewPolicy(eviction.LRU), nil)
	s.Put("/a", entry("/a", "a"))
	s.Put("/b", entry("/b", "b"))

	if s.Len() != 1 {
		t.Fatalf("expected capacity floor of 1, got Len=%d", s.Len())
	}
	if !s.Contains("/b") {
		t.Fatalf("expected newest entry to survive")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := newTestStore(50)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := string(rune('a' + id))
			for r := 0; r < 200; r++ {
				s.Put(key, entry(key, "v"))
				s.Get(key)
				s.Contains(key)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 10 {
		t.Fatalf("expected 10 entries, got %d", s.Len())
	}
}
