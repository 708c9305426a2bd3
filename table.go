package probemap

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrCapacityExhausted is returned when an insert sweeps the whole slot
	// array without finding a free slot or the key itself.
	ErrCapacityExhausted = errors.New("probemap: capacity exhausted")

	// Construction errors returned by New and the presets.
	ErrInvalidCapacity   = errors.New("probemap: capacity must be positive")
	ErrInvalidLoadFactor = errors.New("probemap: load factor must be in (0, 1]")
	ErrNilKeyFunc        = errors.New("probemap: key func is required")
)

type table[K comparable, V any] struct {
	slots []slot[K, V]

	size       int
	capacity   int
	loadFactor float64

	keyFunc  KeyFunc[K]
	hashFunc HashFunc
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(capacity int, loadFactor float64, keyFunc KeyFunc[K], opts ...Option[K, V]) error {
	if capacity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	if math.IsNaN(loadFactor) || loadFactor <= 0 || loadFactor > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, loadFactor)
	}

	if keyFunc == nil {
		return ErrNilKeyFunc
	}

	t.slots = make([]slot[K, V], capacity)
	t.size = 0
	t.capacity = capacity
	t.loadFactor = loadFactor
	t.keyFunc = keyFunc

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = PolyHash
	}

	return nil
}

// index is the ideal slot of key at the current capacity.
func (t *table[K, V]) index(key K) int {
	return bucketIndex(t.hashFunc(t.keyFunc(key)), t.capacity)
}

func (t *table[K, V]) next(idx int) int {
	return (idx + 1) % t.capacity
}

func (t *table[K, V]) overloaded() bool {
	return float64(t.size)/float64(t.capacity) >= t.loadFactor
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx := t.index(key)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[idx]

		// Termination
		if !s.used {
			break
		}

		if s.key == key {
			return s.value, true
		}

		idx = t.next(idx)
	}

	var zero V
	return zero, false
}

func (t *table[K, V]) insert(key K, value V) error {
	// The load factor is checked before placing, so the new entry always
	// lands in the grown array.
	if t.overloaded() {
		if err := t.grow(); err != nil {
			return err
		}
	}

	return t.place(key, value)
}

// place runs the linear probe for key without the load factor check.
func (t *table[K, V]) place(key K, value V) error {
	idx := t.index(key)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[idx]

		if !s.used {
			s.key = key
			s.value = value
			s.used = true
			t.size++

			return nil
		}

		if s.key == key {
			s.value = value
			return nil
		}

		idx = t.next(idx)
	}

	return fmt.Errorf("%w: key %q, capacity %d", ErrCapacityExhausted, t.keyFunc(key), t.capacity)
}

// grow doubles the capacity and re-inserts every entry in storage order.
// The hash depends on the capacity, so entries are fully re-probed rather
// than redistributed by modulus.
func (t *table[K, V]) grow() error {
	old := t.slots

	t.capacity *= 2
	t.slots = make([]slot[K, V], t.capacity)
	t.size = 0

	for i := range old {
		if !old[i].used {
			continue
		}

		if err := t.insert(old[i].key, old[i].value); err != nil {
			return err
		}
	}

	return nil
}

func (t *table[K, V]) delete(key K) bool {
	idx := t.index(key)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[idx]

		if !s.used {
			return false
		}

		if s.key == key {
			t.slots[idx] = slot[K, V]{}
			t.size--
			t.repair(idx)

			return true
		}

		idx = t.next(idx)
	}

	return false
}

// repair re-inserts the remainder of the cluster that followed the slot at
// hole, so no entry is left behind a gap on its probe path. The slot array
// and capacity are re-read on every step: a re-insert may grow the table.
func (t *table[K, V]) repair(hole int) {
	for idx := (hole + 1) % t.capacity; t.slots[idx].used; idx = (idx + 1) % t.capacity {
		s := t.slots[idx]
		t.slots[idx] = slot[K, V]{}
		t.size--

		// At least one slot is free here, the probe cannot be exhausted.
		if err := t.insert(s.key, s.value); err != nil {
			panic(err)
		}
	}
}

func (t *table[K, V]) reset() {
	t.slots = make([]slot[K, V], t.capacity)
	t.size = 0
}
