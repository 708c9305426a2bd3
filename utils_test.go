package probemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapacityFor(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		loadFactor float64
		want       int
	}{
		{"zero", 0, 0.75, 1},
		{"one", 1, 0.75, 1},
		{"three", 3, 0.75, 3},
		{"four", 4, 0.75, 5},
		{"half", 10, 0.5, 19},
		{"full", 8, 1, 8},
		{"invalid load factor", 8, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CapacityFor(tt.n, tt.loadFactor))
		})
	}
}

func TestCapacityFor_NoGrow(t *testing.T) {
	for _, lf := range []float64{0.3, 0.5, 0.75, 0.9, 1} {
		for n := 1; n < 200; n += 7 {
			capacity := CapacityFor(n, lf)

			m, err := New[int, int](capacity, lf, IntKey[int])
			require.NoError(t, err)

			for i := range n {
				require.NoError(t, m.Insert(i, i))
			}

			require.Equalf(t, capacity, m.Cap(), "n=%d lf=%v grew", n, lf)

			if capacity == 1 {
				continue
			}

			// One slot less must grow.
			m, err = New[int, int](capacity-1, lf, IntKey[int])
			require.NoError(t, err)

			for i := range n {
				require.NoError(t, m.Insert(i, i))
			}

			require.Greaterf(t, m.Cap(), capacity-1, "n=%d lf=%v did not grow", n, lf)
		}
	}
}
