package eviction

/*
This file defines how the store decides what to remove when it runs out of space.
*/

/*
Policy is the interface that all eviction strategies must follow.

The store does NOT care how eviction works internally.
It only calls these methods.
*/
type Policy interface {

	// OnGet is called whenever a key is successfully read from the store.
	//
	// Recency-based strategies care about reads: for LRU, any successful
	// query counts as a use. FIFO ignores this.
	OnGet(string)

	// OnPut is called whenever a key is inserted or overwritten.
	//
	// A put always counts as a use: an overwritten key moves to the
	// most-recently-used position, a new key starts there.
	OnPut(string)

	// Remove is called when a key is explicitly removed
	// from the store (not evicted).
	//
	// This allows the eviction policy to clean up
	// any internal bookkeeping for that key.
	Remove(string)

	// Evict is called when the store is FULL and needs space.
	//
	// It returns the key that should be removed, or "" when the policy
	// tracks nothing. The store then actually deletes the entry.
	Evict() string

	// Reset drops all bookkeeping. The store calls this when it is
	// cleared wholesale.
	Reset()
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// LRU (Least Recently Used): evicts the key that has gone the longest
	// without being read or inserted. This is the store's default and the
	// only policy the file cache itself constructs.
	LRU PolicyType = "LRU"

	// FIFO (First In First Out): evicts the oldest inserted key,
	// regardless of access.
	FIFO PolicyType = "FIFO"
)

// NewPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewPolicy(t PolicyType) Policy {
	switch t {
	case LRU:
		return newLRU()
	case FIFO:
		return newFIFO()
	default:
		panic("unknown eviction policy")
	}
}
