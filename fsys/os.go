// Package fsys provides the OS-backed implementation of the cache's
// filesystem contract.
package fsys

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/krisalay/file-content-cache/types"
)

// OS reads through to the real filesystem.
type OS struct{}

var _ types.FileSystem = OS{}

// Exists implements [types.FileSystem].
func (OS) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ModTime implements [types.FileSystem]. A stat failure is reported as an
// I/O fault: the caller has already established existence, so a failure
// here means the file vanished or became unreadable in between.
func (OS) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, types.IO(path, err)
	}
	return info.ModTime(), nil
}

// CanonicalPath implements [types.FileSystem]. Symlinks are resolved when
// the path exists, so every spelling of a file lands on one cache key.
// For paths that cannot be resolved (typically: they no longer exist) it
// falls back to the lexical absolute path, keeping Invalidate and
// IsCached total.
func (OS) CanonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// ReadFile implements [types.FileSystem]. The read is synchronous and
// complete; ctx is checked once up front, there is no mid-read
// cancellation.
func (OS) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", types.IO(path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", types.IO(path, err)
	}
	return string(data), nil
}
