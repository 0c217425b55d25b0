package network

import (
	"math"

	"github.com/phydb-rc/rcnet/geom"
)

// axisLength returns the distance between p1 and p2 along whichever axis
// they differ on. Callers only invoke this for planar (non-via) endpoint
// pairs, where exactly one axis varies.
func axisLength(p1, p2 geom.Point2D) float64 {
	if p1.X != p2.X {
		return math.Abs(p2.X - p1.X)
	}
	return math.Abs(p2.Y - p1.Y)
}

// perpWidth returns rect's extent along the axis perpendicular to the one
// p1/p2 vary on: a horizontal run's width is its rectangle's height, and
// vice versa.
func perpWidth(rect geom.Rect2D, p1, p2 geom.Point2D) float64 {
	if p1.X != p2.X {
		return rect.Height()
	}
	return rect.Width()
}

func minmax(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func strictlyBetween(v, a, b float64) bool {
	lo, hi := minmax(a, b)
	return v > lo && v < hi
}

func rectCenter(rect geom.Rect2D) geom.Point2D {
	ll, ur := rect.LL(), rect.UR()
	return geom.Point2D{X: (ll.X + ur.X) / 2, Y: (ll.Y + ur.Y) / 2}
}
