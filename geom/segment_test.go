package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegment_Intersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"crossing X", Segment{0, 0, 10, 10}, Segment{0, 10, 10, 0}, true},
		{"parallel apart", Segment{0, 0, 10, 0}, Segment{0, 5, 10, 5}, false},
		{"touching endpoint", Segment{0, 0, 5, 5}, Segment{5, 5, 10, 0}, true},
		{"disjoint", Segment{0, 0, 1, 1}, Segment{5, 5, 6, 6}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Intersects(tc.b))
		})
	}
}

func TestClearanceBetween(t *testing.T) {
	a := Segment{0, 0, 10, 0}
	b := Segment{0, 2, 10, 2}
	require.InDelta(t, 2.0, ClearanceBetween(a, b), 1e-9)

	c := Segment{0, 0, 10, 10}
	d := Segment{0, 10, 10, 0}
	require.Equal(t, 0.0, ClearanceBetween(c, d))
}

func TestCollinear(t *testing.T) {
	require.True(t, Collinear(0, 0, 5, 5, 10, 10, 1e-6))
	require.False(t, Collinear(0, 0, 5, 5, 10, 11, 1e-6))
}
