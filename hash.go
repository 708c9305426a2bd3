package probemap

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

// HashFunc maps the string projection of a key to a signed 32-bit hash.
type HashFunc func(s string) int32

// KeyFunc projects a key onto its canonical string form. Every Map requires
// one: the hash is computed over this string, not over the key's memory.
type KeyFunc[K comparable] func(K) string

// PolyHash is the default hash: h = h*31 + c for every UTF-16 code unit c of s,
// wrapping at 32 bits on every step.
func PolyHash(s string) int32 {
	var h int32

	for _, r := range s {
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			h = h*31 + r1
			h = h*31 + r2

			continue
		}

		h = h*31 + r
	}

	return h
}

// bucketIndex returns |h| mod capacity. The absolute value is taken in 64 bits,
// so math.MinInt32 maps to 2^31 mod capacity.
func bucketIndex(h int32, capacity int) int {
	v := int64(h)
	if v < 0 {
		v = -v
	}

	return int(v % int64(capacity))
}

// StringKey is the identity projection for string-like keys.
func StringKey[K ~string](k K) string {
	return string(k)
}

// IntKey projects signed integers onto their base 10 form.
func IntKey[K ~int | ~int8 | ~int16 | ~int32 | ~int64](k K) string {
	return strconv.FormatInt(int64(k), 10)
}

// UintKey projects unsigned integers onto their base 10 form.
func UintKey[K ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](k K) string {
	return strconv.FormatUint(uint64(k), 10)
}

// StringerKey uses the key's String method.
func StringerKey[K interface {
	comparable
	fmt.Stringer
}](k K) string {
	return k.String()
}
