package geom

// ContainsPoint is the inclusive containment test of spec rule
// rect_contains(r, p): p.x in [r.ll.x, r.ur.x] and p.y in [r.ll.y, r.ur.y].
// A point exactly on an edge counts as contained.
//
// Complexity: O(1).
func ContainsPoint(r Rect2D, p Point2D) bool {
	return r.ContainsPoint(p)
}

// ContainsRect reports whether r wholly contains other, corners included.
//
// Complexity: O(1).
func ContainsRect(r, other Rect2D) bool {
	return r.Contains(other.Rect)
}

// XOverlap computes the 1-D overlap of two rectangles' X-intervals.
// It returns the overlap length and true when the intervals intersect
// (inclusive of touching endpoints); otherwise (0, false).
//
// Complexity: O(1).
func XOverlap(a, b Rect2D) (length float64, ok bool) {
	if !a.X.Intersects(b.X) {
		return 0, false
	}
	lo := max(a.X.Lo, b.X.Lo)
	hi := min(a.X.Hi, b.X.Hi)
	return hi - lo, true
}

// YOverlap is the Y-axis counterpart of XOverlap.
//
// Complexity: O(1).
func YOverlap(a, b Rect2D) (length float64, ok bool) {
	if !a.Y.Intersects(b.Y) {
		return 0, false
	}
	lo := max(a.Y.Lo, b.Y.Lo)
	hi := min(a.Y.Hi, b.Y.Hi)
	return hi - lo, true
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Bin is the integer grid-cell coordinate used by the uniform spatial
// partition: floor(coord / size), with correct flooring for negative
// coordinates (Go's integer division truncates toward zero, which is not
// floor division for negative operands).
//
// Complexity: O(1).
func Bin(coord, size float64) int {
	q := coord / size
	b := int(q)
	if q < 0 && float64(b) != q {
		b--
	}
	return b
}
