package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsPoint(t *testing.T) {
	r := NewRect2D(Point2D{X: 0, Y: 0}, Point2D{X: 10, Y: 10})

	cases := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"interior", Point2D{X: 5, Y: 5}, true},
		{"on-edge", Point2D{X: 0, Y: 5}, true},
		{"on-corner", Point2D{X: 10, Y: 10}, true},
		{"outside", Point2D{X: 11, Y: 5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ContainsPoint(r, tc.p))
		})
	}
}

func TestContainsRect(t *testing.T) {
	outer := NewRect2D(Point2D{X: 0, Y: 0}, Point2D{X: 100, Y: 100})
	inner := NewRect2D(Point2D{X: 10, Y: 10}, Point2D{X: 20, Y: 20})
	straddling := NewRect2D(Point2D{X: 90, Y: 90}, Point2D{X: 110, Y: 110})

	require.True(t, ContainsRect(outer, inner))
	require.False(t, ContainsRect(outer, straddling))
}

func TestXOverlapYOverlap(t *testing.T) {
	a := NewRect2D(Point2D{X: 0, Y: 0}, Point2D{X: 100, Y: 10})
	b := NewRect2D(Point2D{X: 50, Y: 20}, Point2D{X: 150, Y: 30})

	xLen, ok := XOverlap(a, b)
	require.True(t, ok)
	require.Equal(t, 50.0, xLen)

	_, ok = YOverlap(a, b)
	require.False(t, ok)
}

func TestBinNegativeCoordinates(t *testing.T) {
	cases := []struct {
		coord, size float64
		want        int
	}{
		{0, 750, 0},
		{749, 750, 0},
		{750, 750, 1},
		{-1, 750, -1},
		{-750, 750, -1},
		{-751, 750, -2},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Bin(tc.coord, tc.size), "Bin(%v, %v)", tc.coord, tc.size)
	}
}
