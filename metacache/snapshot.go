package metacache

import (
	"sort"

	"github.com/efficientgo/core/errors"
	"github.com/sugawarayuuta/sonnet"

	"github.com/homier/probemap"
)

// Snapshot is the JSON document written by Cache.Snapshot.
type Snapshot struct {
	Stats probemap.Stats `json:"stats"`
	Files []FileMetadata `json:"files"`
}

// Snapshot returns the cache stats and entries as JSON. Entries are sorted
// by file id.
func (c *Cache) Snapshot() ([]byte, error) {
	c.mu.Lock()
	snap := Snapshot{
		Stats: c.files.Stats(),
		Files: c.files.Values(),
	}
	c.mu.Unlock()

	sort.Slice(snap.Files, func(i, j int) bool {
		return snap.Files[i].FileID < snap.Files[j].FileID
	})

	b, err := sonnet.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "marshal snapshot")
	}

	return b, nil
}
