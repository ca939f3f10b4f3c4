package engine

import (
	"context"
	"time"

	"github.com/krisalay/file-content-cache/freshness"
	"github.com/krisalay/file-content-cache/types"
)

/*
Engine is the "brain" of the file cache.
It is responsible for the "behavior" of the cache, NOT storage.
This acts as the policy layer.

It decides:
- When a cached entry is still fresh for the file on disk
- How content is loaded from the filesystem on a miss or stale hit
- How metrics are recorded

It does NOT:
- Store entries
- Handle locking
- Decide eviction order
*/
type Engine struct {

	// FS is how the cache talks to the disk: existence checks, stat,
	// path canonicalization and full-content reads all go through it.
	// Tests substitute a fake here.
	FS types.FileSystem

	// Freshness decides whether a stored entry still matches the file.
	// The default compares modification timestamps for equality.
	Freshness freshness.Strategy

	// Metrics is how we keep track of what the cache is doing.
	// Hits, misses, stale reloads, evictions.
	Metrics types.Metrics
}

// New creates an Engine.
func New(fs types.FileSystem, fr freshness.Strategy, metrics types.Metrics) *Engine {

	// Ensure metrics is always non-nil
	// This avoids defensive nil checks throughout the codebase
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if fr == nil {
		fr = freshness.ModTimeMatch{}
	}

	return &Engine{
		FS:        fs,
		Freshness: fr,
		Metrics:   metrics,
	}
}

// IsFresh reports whether ent may be served for a file whose current
// modification timestamp is modTime.
func (e *Engine) IsFresh(ent *types.FileEntry, modTime time.Time) bool {
	return e.Freshness.IsFresh(ent, modTime)
}

/*
Load is used when the cache does NOT have fresh content for a path.
It reads the complete current content from the filesystem and builds the
replacement entry. modTime must be the modification timestamp observed by
the caller's stat, so the entry records the state the content belongs to.
*/
func (e *Engine) Load(ctx context.Context, key string, modTime time.Time) (*types.FileEntry, error) {
	content, err := e.FS.ReadFile(ctx, key)
	if err != nil {
		return nil, err
	}
	return &types.FileEntry{
		Key:           key,
		Content:       content,
		LastReadTime:  time.Now(),
		ModTimeAtRead: modTime,
	}, nil
}
