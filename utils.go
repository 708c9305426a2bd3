package probemap

// Returns the smallest capacity that holds n entries without growing at the
// given load factor threshold.
func CapacityFor(n int, loadFactor float64) int {
	if n <= 1 || loadFactor <= 0 {
		return 1
	}

	c := int(float64(n-1)/loadFactor) + 1
	for c > 1 && float64(n-1)/float64(c-1) < loadFactor {
		c--
	}

	for float64(n-1)/float64(c) >= loadFactor {
		c++
	}

	return c
}
