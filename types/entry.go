package types

import "time"

// FileEntry is one cached file's content snapshot.
// Content and ModTimeAtRead are fixed once the entry is built; a fresh
// hit only bumps LastReadTime, and that write happens inside the store
// lock (RecencyStore.Touch). A refill installs a whole new entry.
type FileEntry struct {
	// Key is the canonical absolute path this entry is cached under.
	Key string

	// Content is the full file content at the time it was read from disk.
	Content string

	// LastReadTime is when the cache last served this content
	// (on a hit or on a fill).
	LastReadTime time.Time

	// ModTimeAtRead is the filesystem modification time observed at the
	// moment Content was fetched from disk. Freshness checks compare this
	// against the file's current modification time.
	ModTimeAtRead time.Time
}
