// This file defines how the cache decides whether a stored entry still
// matches the file on disk.

package freshness

import (
	"time"

	"github.com/krisalay/file-content-cache/types"
)

/*
Strategy is the interface that all freshness rules must follow. Instead of
hard-coding the staleness check into the cache, we define a strategy so the
validation behavior can be swapped easily.
*/
type Strategy interface {

	// IsFresh reports whether the cached entry may still be served,
	// given the file's current modification timestamp.
	IsFresh(ent *types.FileEntry, currentModTime time.Time) bool
}
