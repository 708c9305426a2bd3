package probemap

// slot is a single cell of the probe array. There is no tombstone state:
// a slot is either used or empty.
type slot[K comparable, V any] struct {
	key   K
	value V
	used  bool
}

// Entry is a key-value pair returned by Entries.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}
