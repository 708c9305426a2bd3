package probemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileMetadataMap(t *testing.T) {
	m, err := NewFileMetadataMap[string, int](StringKey[string])
	require.NoError(t, err)

	assert.Equal(t, FileMetadataCapacity, m.Cap())
	assert.Equal(t, DefaultLoadFactor, m.Stats().LoadFactorThreshold)
	assert.Equal(t, 0.0, m.LoadFactor())
}

func TestNewAttachmentMap(t *testing.T) {
	m, err := NewAttachmentMap[string, string](StringKey[string])
	require.NoError(t, err)

	assert.Equal(t, DefaultCapacity, m.Cap())
	assert.Equal(t, 0, m.Len())
}

func TestNewCustomMap(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		wantCapacity  int
		wantThreshold float64
	}{
		{"defaults", Config{}, DefaultCapacity, DefaultLoadFactor},
		{"capacity only", Config{Capacity: 32}, 32, DefaultLoadFactor},
		{"load factor only", Config{LoadFactor: 0.6}, DefaultCapacity, 0.6},
		{"both", Config{Capacity: 8, LoadFactor: 0.5}, 8, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewCustomMap[string, bool](tt.cfg, StringKey[string])
			require.NoError(t, err)

			assert.Equal(t, tt.wantCapacity, m.Cap())
			assert.Equal(t, tt.wantThreshold, m.Stats().LoadFactorThreshold)

			require.NoError(t, m.Insert("flag", true))
			v, ok := m.Get("flag")
			require.True(t, ok)
			assert.True(t, v)
		})
	}
}

func TestNewCustomMap_Invalid(t *testing.T) {
	_, err := NewCustomMap[string, bool](Config{Capacity: -1}, StringKey[string])
	require.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = NewCustomMap[string, bool](Config{LoadFactor: 2}, StringKey[string])
	require.ErrorIs(t, err, ErrInvalidLoadFactor)
}
