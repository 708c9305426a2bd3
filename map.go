package probemap

// Map is an open-addressing hash map with linear probing. It grows by
// doubling once the load factor threshold would be reached, and repairs the
// following cluster on delete instead of leaving tombstones, so Len always
// counts live entries only.
//
// A Map is owned by a single goroutine. It has no internal locking: grow and
// cluster repair assume no other mutation is interleaved, so concurrent
// callers must serialize every call themselves (for example behind a
// sync.Mutex, see the metacache package).
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with the given initial capacity and load factor
// threshold. The key func provides the string form the hash is computed over.
func New[K comparable, V any](capacity int, loadFactor float64, key KeyFunc[K], opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(capacity, loadFactor, key, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Insert puts a key in the map, or updates its value if it is already there.
// The only error is ErrCapacityExhausted.
func (m *Map[K, V]) Insert(key K, value V) error {
	return m.insert(key, value)
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Has reports whether key is in the map.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.delete(key)
}

// Clear drops every entry. The capacity is kept.
func (m *Map[K, V]) Clear() {
	m.reset()
}

// Keys returns the keys in storage order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for i := range m.slots {
		if m.slots[i].used {
			keys = append(keys, m.slots[i].key)
		}
	}

	return keys
}

// Values returns the values in storage order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for i := range m.slots {
		if m.slots[i].used {
			values = append(values, m.slots[i].value)
		}
	}

	return values
}

// Entries returns the key-value pairs in storage order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	for i := range m.slots {
		if m.slots[i].used {
			entries = append(entries, Entry[K, V]{Key: m.slots[i].key, Value: m.slots[i].value})
		}
	}

	return entries
}

// Returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Returns the current slot array capacity.
func (m *Map[K, V]) Cap() int {
	return m.capacity
}

// Returns the current load factor, size divided by capacity.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(m.capacity)
}

// Returns the map size, capacity and load factors.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Size:                m.size,
		Capacity:            m.capacity,
		LoadFactor:          m.LoadFactor(),
		LoadFactorThreshold: m.loadFactor,
	}
}
