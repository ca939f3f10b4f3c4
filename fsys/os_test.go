package fsys

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/krisalay/file-content-cache/types"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	fs := OS{}
	require.True(t, fs.Exists(p))
	require.False(t, fs.Exists(filepath.Join(dir, "missing")))

	// directories are not readable files
	require.False(t, fs.Exists(dir))
}

func TestModTime(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(p, stamp, stamp))

	fs := OS{}
	mt, err := fs.ModTime(p)
	require.NoError(t, err)
	require.True(t, mt.Equal(stamp))

	_, err = fs.ModTime(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, types.ErrIO)
}

func TestCanonicalPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	fs := OS{}

	// a messy spelling of an existing file collapses onto one key
	messy := filepath.Join(dir, ".", "f.txt")
	require.Equal(t, fs.CanonicalPath(p), fs.CanonicalPath(messy))

	// a symlink resolves to its target
	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(p, link); err == nil {
		require.Equal(t, fs.CanonicalPath(p), fs.CanonicalPath(link))
	}

	// missing paths still canonicalize, so Invalidate stays total
	missing := filepath.Join(dir, "missing.txt")
	got := fs.CanonicalPath(missing)
	require.True(t, filepath.IsAbs(got))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(p, []byte("hello"), 0o644))

	fs := OS{}
	content, err := fs.ReadFile(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, "hello", content)

	_, err = fs.ReadFile(context.Background(), filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, types.ErrIO)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fs.ReadFile(ctx, p)
	require.ErrorIs(t, err, types.ErrIO)
}
