package filecache

import (
	"context"
	"log/slog"
	"time"

	"github.com/krisalay/file-content-cache/api"
	"github.com/krisalay/file-content-cache/engine"
	"github.com/krisalay/file-content-cache/eviction"
	"github.com/krisalay/file-content-cache/freshness"
	"github.com/krisalay/file-content-cache/fsys"
	"github.com/krisalay/file-content-cache/store"
	"github.com/krisalay/file-content-cache/types"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxSize is the capacity bound used when Config.MaxSize is unset.
const DefaultMaxSize = 100

// bytesPerChar is the assumed per-character byte cost used by the memory
// footprint heuristic. Content is treated as text in a two-byte encoding;
// the estimate is documented as approximate, never exact.
const bytesPerChar = 2

/*
FileCache is the main cache implementation.
This struct is the orchestrator that connects:
- the recency store
- eviction
- freshness validation
- disk access
- metrics
- logging
*/
type FileCache struct {
	// store holds the cached entries in recency order.
	st *store.RecencyStore

	// engine contains the "rules" of the cache: freshness, disk access, metrics.
	engine *engine.Engine

	// maxSize is the capacity bound, kept for stats reporting.
	maxSize int

	// logger receives debug events for fills, stale reloads and evictions.
	logger *slog.Logger

	// singleflight prevents multiple goroutines from reading the same
	// file from disk simultaneously when they all see the same miss or
	// stale entry.
	sf singleflight.Group
}

var _ api.Cache = (*FileCache)(nil)

// Config controls construction of a FileCache. The zero value gives a
// cache over the real filesystem with a 100-entry bound, modification
// timestamp freshness, no metrics and the default slog logger.
type Config struct {
	// MaxSize bounds the number of cached files. Values below 1 fall
	// back to DefaultMaxSize.
	MaxSize int

	// FS is the filesystem collaborator. Defaults to the real OS
	// filesystem; tests substitute a fake here.
	FS types.FileSystem

	// Freshness decides when a cached entry must be re-read.
	// Defaults to modification timestamp equality.
	Freshness freshness.Strategy

	// Metrics observes cache events. Defaults to a no-op.
	Metrics types.Metrics

	// Logger receives debug events. Defaults to slog.Default().
	Logger *slog.Logger
}

// New creates a FileCache from cfg, applying defaults for unset fields.
func New(cfg Config) *FileCache {
	if cfg.MaxSize < 1 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.FS == nil {
		cfg.FS = fsys.OS{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	eng := engine.New(cfg.FS, cfg.Freshness, cfg.Metrics)

	c := &FileCache{
		engine:  eng,
		maxSize: cfg.MaxSize,
		logger:  cfg.Logger,
	}

	// The store reports capacity evictions back so they can be counted
	// and logged. The hook runs under the store lock and therefore only
	// touches metrics and the logger.
	c.st = store.New(cfg.MaxSize, eviction.NewPolicy(eviction.LRU),
		func(key string, _ *types.FileEntry) {
			eng.Metrics.Eviction()
			c.logger.Debug("evicted least recently used entry", "path", key)
		})

	return c
}

/*
ReadFile retrieves the content of the file at path, serving it from cache
when the cached copy is still fresh.
*/
func (c *FileCache) ReadFile(ctx context.Context, path string) (string, error) {

	// Existence is checked against the caller's spelling of the path;
	// a missing file fails before any cache state is touched.
	if !c.engine.FS.Exists(path) {
		return "", types.NotFound(path)
	}

	key := c.engine.FS.CanonicalPath(path)

	modTime, err := c.engine.FS.ModTime(key)
	if err != nil {
		return "", err
	}

	stale := false
	if ent, ok := c.st.Get(key); ok {
		if c.engine.IsFresh(ent, modTime) {
			// Fresh hit: content and ModTimeAtRead stay as they are,
			// only the read time moves. Touch updates it and promotes
			// recency in one locked step, and backs off harmlessly if
			// the entry was invalidated in the meantime.
			c.engine.Metrics.Hit()
			c.st.Touch(key, time.Now())
			return ent.Content, nil
		}
		stale = true
		c.logger.Debug("cached entry is stale", "path", key,
			"cached_mod_time", ent.ModTimeAtRead, "current_mod_time", modTime)
	}

	/*
		Fill. singleflight ensures that if many goroutines race a fill
		for the same key, only ONE of them reads the file; the others
		wait and share the result. The prior entry, if any, stays in the
		store untouched until the fill fully succeeds.

		Miss and StaleHit are recorded inside the flight, so the
		counters track actual disk fills: waiters that share a fill do
		not inflate them.
	*/
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if stale {
			c.engine.Metrics.StaleHit()
		} else {
			c.engine.Metrics.Miss()
		}
		ent, err := c.engine.Load(ctx, key, modTime)
		if err != nil {
			return nil, err
		}
		c.st.Put(key, ent)
		c.logger.Debug("filled cache entry", "path", key, "bytes", len(ent.Content))
		return ent.Content, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

/*
Invalidate drops the cached entry for path, if any.
*/
func (c *FileCache) Invalidate(path string) {
	c.st.Remove(c.engine.FS.CanonicalPath(path))
}

/*
InvalidateAll empties the cache.
*/
func (c *FileCache) InvalidateAll() {
	c.st.Clear()
}

/*
IsCached reports whether path has a cached entry, without promoting it.
*/
func (c *FileCache) IsCached(path string) bool {
	return c.st.Contains(c.engine.FS.CanonicalPath(path))
}

// CachedCount returns the number of files currently cached.
func (c *FileCache) CachedCount() int {
	return c.st.Len()
}

/*
MemoryFootprint estimates the bytes held by cached content as
len(content) * bytesPerChar summed over all entries. The per-character
cost is a fixed constant tied to an assumed text encoding, so the result
is a heuristic, not an exact measurement.
*/
func (c *FileCache) MemoryFootprint() int64 {
	var total int64
	c.st.Range(func(ent *types.FileEntry) {
		total += int64(len(ent.Content)) * bytesPerChar
	})
	return total
}
