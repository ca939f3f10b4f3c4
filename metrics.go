package filecache

import "sync"

// CounterMetrics is a ready-made Metrics implementation that counts
// events under a mutex. Useful for tests and for callers that want plain
// numbers without wiring a metrics system.
type CounterMetrics struct {
	mu        sync.Mutex
	hits      int
	misses    int
	staleHits int
	evictions int
}

func (m *CounterMetrics) Hit()      { m.mu.Lock(); m.hits++; m.mu.Unlock() }
func (m *CounterMetrics) Miss()     { m.mu.Lock(); m.misses++; m.mu.Unlock() }
func (m *CounterMetrics) StaleHit() { m.mu.Lock(); m.staleHits++; m.mu.Unlock() }
func (m *CounterMetrics) Eviction() { m.mu.Lock(); m.evictions++; m.mu.Unlock() }

// Hits returns the number of fresh hits recorded so far.
func (m *CounterMetrics) Hits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}

// Misses returns the number of cold misses recorded so far.
func (m *CounterMetrics) Misses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}

// StaleHits returns the number of stale reloads recorded so far.
func (m *CounterMetrics) StaleHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.staleHits
}

// Evictions returns the number of capacity evictions recorded so far.
func (m *CounterMetrics) Evictions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.evictions
}
