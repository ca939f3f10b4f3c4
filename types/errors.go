package types

import (
	"errors"
	"fmt"
)

// The cache surfaces exactly two kinds of failure. Callers are expected
// to branch with errors.Is on these sentinels; everything else about the
// underlying fault travels in the wrapped cause.
var (
	// ErrNotFound means the requested path did not exist at the time of
	// the call.
	ErrNotFound = errors.New("file not found")

	// ErrIO means the file exists but its content could not be read:
	// permissions, a transient fault, or the file disappearing between
	// the existence check and the read.
	ErrIO = errors.New("file read failed")
)

// NotFound wraps ErrNotFound with the offending path.
func NotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

// IO wraps ErrIO with the offending path and the underlying cause.
// The cause stays in the chain, so errors.Is can still see it.
func IO(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, path, cause)
}
