package probemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyHash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int32
	}{
		{name: "Empty", input: "", want: 0},
		{name: "Single char", input: "a", want: 97},
		{name: "Two chars", input: "ab", want: 97*31 + 98},
		{name: "Collision Aa", input: "Aa", want: 2112},
		{name: "Collision BB", input: "BB", want: 2112},
		{name: "Word", input: "hello", want: 99162322},
		{name: "Wraps to MinInt32", input: "polygenelubricants", want: math.MinInt32},
		// U+1F600 is hashed as its surrogate pair D83D DE00.
		{name: "Surrogate pair", input: "\U0001F600", want: 0xD83D*31 + 0xDE00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PolyHash(tt.input))
		})
	}
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		name     string
		hash     int32
		capacity int
		want     int
	}{
		{"Zero", 0, 4, 0},
		{"Positive", 7, 4, 3},
		{"Negative", -5, 4, 1},
		{"MinInt32 power of two", math.MinInt32, 8, 0},
		{"MinInt32 odd", math.MinInt32, 3, 2},
		{"MaxInt32", math.MaxInt32, 10, 7},
		{"Capacity one", 12345, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, bucketIndex(tt.hash, tt.capacity))
		})
	}
}

func TestBucketIndex_DependsOnCapacity(t *testing.T) {
	h := PolyHash("hello")

	assert.Equal(t, 2, bucketIndex(h, 4))
	assert.Equal(t, 18, bucketIndex(h, 32))
}

type productID struct {
	n int
}

func (p productID) String() string {
	return "product-" + IntKey(p.n)
}

func TestKeyFuncs(t *testing.T) {
	type fileID string

	assert.Equal(t, "abc", StringKey("abc"))
	assert.Equal(t, "f-1", StringKey(fileID("f-1")))
	assert.Equal(t, "-42", IntKey(-42))
	assert.Equal(t, "4", IntKey(int8(4)))
	assert.Equal(t, "7", UintKey(uint8(7)))
	assert.Equal(t, "18446744073709551615", UintKey(uint64(math.MaxUint64)))
	assert.Equal(t, "product-3", StringerKey(productID{3}))
}
