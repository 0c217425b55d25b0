package geom

import (
	"github.com/golang/geo/r2"
)

// Point2D is an ordered pair of real design-database-unit coordinates.
type Point2D = r2.Point

// Rect2D is an axis-aligned rectangle with lower-left and upper-right
// corners. The invariant ll.X <= ur.X && ll.Y <= ur.Y is enforced by
// NewRect2D; callers that build a Rect2D directly from an r2.Rect literal
// are responsible for it.
type Rect2D struct {
	r2.Rect
}

// NewRect2D builds a Rect2D from two corner points, normalizing their
// order so the lower-left/upper-right invariant always holds regardless
// of how the caller supplied the corners.
//
// Complexity: O(1).
func NewRect2D(a, b Point2D) Rect2D {
	return Rect2D{r2.RectFromPoints(a, b)}
}

// LL returns the lower-left corner.
func (r Rect2D) LL() Point2D { return r.Lo() }

// UR returns the upper-right corner.
func (r Rect2D) UR() Point2D { return r.Hi() }

// Width returns the rectangle's extent along X (ur.X - ll.X).
func (r Rect2D) Width() float64 { return r.X.Length() }

// Height returns the rectangle's extent along Y (ur.Y - ll.Y).
func (r Rect2D) Height() float64 { return r.Y.Length() }

// Area returns width * height.
func (r Rect2D) Area() float64 { return r.Width() * r.Height() }
