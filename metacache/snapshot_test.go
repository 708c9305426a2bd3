package metacache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"
)

func TestCache_Snapshot(t *testing.T) {
	c := newCache(t, Config{Capacity: 8})

	for _, id := range []string{"f-3", "f-1", "f-2"} {
		require.NoError(t, c.Store(newFile(id, "p-1")))
	}

	b, err := c.Snapshot()
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, sonnet.Unmarshal(b, &snap))

	assert.Equal(t, c.Stats(), snap.Stats)
	require.Len(t, snap.Files, 3)
	assert.Equal(t, "f-1", snap.Files[0].FileID)
	assert.Equal(t, "f-2", snap.Files[1].FileID)
	assert.Equal(t, "f-3", snap.Files[2].FileID)
	assert.True(t, newFile("f-1", "p-1").UploadedAt.Equal(snap.Files[0].UploadedAt))

	assert.Contains(t, string(b), `"fileId":"f-1"`)
	assert.Contains(t, string(b), `"loadFactorThreshold":0.75`)
	assert.NotContains(t, string(b), "folderId")
}

func TestCache_Snapshot_Empty(t *testing.T) {
	c := newCache(t, Config{})

	b, err := c.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"files":[]`)
}
