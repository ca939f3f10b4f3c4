package freshness

import (
	"time"

	"github.com/krisalay/file-content-cache/types"
)

/*
ModTimeMatch is the default freshness rule: an entry is fresh iff the
modification timestamp observed when its content was read equals the file's
current modification timestamp. Any mismatch means the file changed and the
entry must be refilled.

Known limitation: this check is only as precise as the filesystem's
timestamp resolution. Two writes landing inside one timestamp tick are not
distinguishable, so the second write goes undetected until the timestamp
moves again. That approximation is accepted, not worked around.
*/
type ModTimeMatch struct{}

// IsFresh implements [Strategy].
func (ModTimeMatch) IsFresh(ent *types.FileEntry, currentModTime time.Time) bool {
	return ent.ModTimeAtRead.Equal(currentModTime)
}
