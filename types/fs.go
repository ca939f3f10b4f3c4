package types

import (
	"context"
	"time"
)

// FileSystem is the contract between the cache and the underlying disk.
// The cache never touches the os package directly; everything it needs
// from the filesystem goes through this interface, so tests can swap in
// a fake and count real reads.
type FileSystem interface {

	// Exists reports whether the path currently points at a readable file.
	Exists(path string) bool

	// ModTime returns the file's current modification timestamp.
	// The cache compares this against FileEntry.ModTimeAtRead to decide
	// whether a cached entry is still fresh.
	ModTime(path string) (time.Time, error)

	// CanonicalPath resolves a path to its canonical absolute form.
	// Two spellings of the same file (relative vs absolute, via a
	// symlink) must map to the same string, because that string is the
	// cache key. It must succeed for paths that do not exist, falling
	// back to a lexical absolute path, so that Invalidate and IsCached
	// stay total.
	CanonicalPath(path string) string

	/*
		ReadFile is called when the cache fills an entry.

		1. Cache stats the file → entry missing or stale
		2. Cache calls ReadFile(ctx, path)
		3. FileSystem reads the complete current content
		4. Cache stores the result and returns it

		A failed read must surface ErrIO; the cache then leaves any
		previously cached entry for the path untouched.
	*/
	ReadFile(ctx context.Context, path string) (string, error)
}
