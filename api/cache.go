package api

import (
	"context"
	"time"
)

/*
Cache defines the PUBLIC API of the file content cache.
This is a contract that guarantees certain behaviors, without exposing internals.
All of the details like (recency tracking, eviction, freshness validation, concurrency, disk access)
are hidden behind this interface.
*/
type Cache interface {

	/*
		ReadFile returns the full content of the file at path.

		BEHAVIOR:
		-------------------
		1. If the path is cached and the file's modification timestamp
		   still matches the one recorded at fill time:
		   - Return the cached content, no disk read (fresh hit)

		2. If the path is not cached, or the timestamp changed:
		   - Read the complete current content from disk
		   - Store it in the cache
		   - Return it (fill)

		FAILURES:
		---------
		- types.ErrNotFound if the path does not exist at call time
		- types.ErrIO if the file exists but cannot be read

		Both propagate unmodified; a failed fill never touches a
		previously cached entry for the path.
	*/
	ReadFile(ctx context.Context, path string) (string, error)

	/*
		Invalidate drops the cached entry for one path immediately.

		BEHAVIOR:
		---------
		- Resolves the path to its canonical key and removes it
		- Does NOT touch the file on disk
		- Never fails; invalidating an uncached path is a no-op

		USE CASES:
		----------
		- Manual invalidation after an external write
		- Administrative cleanup
	*/
	Invalidate(path string)

	/*
		InvalidateAll empties the cache in one step.

		After it returns, CachedCount is 0 and IsCached reports false for
		every previously cached path. Never fails.
	*/
	InvalidateAll()

	/*
		IsCached reports whether a path currently has a cached entry.

		This is a pure peek: it does not promote the entry and never
		changes eviction order, so monitoring code can poll it freely.
	*/
	IsCached(path string) bool

	// CachedCount returns the number of files currently cached.
	CachedCount() int

	/*
		MemoryFootprint returns a heuristic estimate of the bytes held by
		cached content: the sum of each entry's content length times a
		fixed per-character byte cost. It is an approximation tied to an
		assumed text encoding, NOT an exact accounting of memory used.
	*/
	MemoryFootprint() int64

	// Stats returns a point-in-time snapshot of the cache for any
	// presentation layer to render.
	Stats() Stats
}

// Stats is a snapshot of the cache's state.
type Stats struct {
	// CachedFiles is the number of entries currently held.
	CachedFiles int

	// MemoryBytes is the heuristic content footprint, see MemoryFootprint.
	MemoryBytes int64

	// MaxSize is the configured capacity bound.
	MaxSize int

	// Files describes each cached entry. Order is unspecified.
	Files []FileStat
}

// FileStat describes one cached file inside a Stats snapshot.
type FileStat struct {
	// Path is the canonical absolute path the entry is cached under.
	Path string

	// SizeBytes is this entry's share of the heuristic footprint.
	SizeBytes int64

	// LastRead is when the cache last served this content.
	LastRead time.Time
}
