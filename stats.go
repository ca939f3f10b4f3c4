package filecache

import (
	"log/slog"

	"github.com/krisalay/file-content-cache/api"
	"github.com/krisalay/file-content-cache/types"
)

/*
Stats returns a point-in-time snapshot of the cache: entry count, the
heuristic memory footprint, the capacity bound and a per-file breakdown.
Taking a snapshot does not promote any entry. Rendering the snapshot is
left to the caller; the cache only exposes the numbers.
*/
func (c *FileCache) Stats() api.Stats {
	st := api.Stats{MaxSize: c.maxSize}
	c.st.Range(func(ent *types.FileEntry) {
		size := int64(len(ent.Content)) * bytesPerChar
		st.Files = append(st.Files, api.FileStat{
			Path:      ent.Key,
			SizeBytes: size,
			LastRead:  ent.LastReadTime,
		})
		st.MemoryBytes += size
		st.CachedFiles++
	})
	return st
}

// LogStats emits the current snapshot through the given logger, one
// summary record plus one debug record per cached file. A nil logger
// falls back to slog.Default().
func (c *FileCache) LogStats(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	st := c.Stats()
	logger.Info("cache stats",
		"cached_files", st.CachedFiles,
		"memory_bytes", st.MemoryBytes,
		"max_size", st.MaxSize)

	for _, f := range st.Files {
		logger.Debug("cached file",
			"path", f.Path,
			"size_bytes", f.SizeBytes,
			"last_read", f.LastRead)
	}
}
