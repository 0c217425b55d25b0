package rgraph

import (
	"errors"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/wire"
)

// Sentinel errors for resistor graph operations.
var (
	// ErrSplitVia indicates an attempt to split a via-type resistor; the
	// split operation is only defined for planar resistors. Callers
	// should treat this as a soft warning and skip the split.
	ErrSplitVia = errors.New("rgraph: cannot split a via resistor")
	// ErrSplitAtEndpoint indicates an attempt to split at p1 or p2
	// rather than a point strictly interior to the resistor.
	ErrSplitAtEndpoint = errors.New("rgraph: split point is not strictly interior to the resistor")
	// ErrResistorNotFound indicates an out-of-range resistor index.
	ErrResistorNotFound = errors.New("rgraph: resistor index out of range")
)

// Sentinel value recorded for the absent numeric field of each Resistor
// variant (Area on a planar resistor, Length/Width on a via resistor).
const NoValue = -1

// Resistor is one branch of the RC graph: a planar run (Length, Width,
// Material set; Area == NoValue) or a via (Area set; Length == Width ==
// NoValue, P1 == P2). Both carry mutable node IDs N1/N2 and a
// non-owning back-reference Owner to the WireSegment that produced them.
type Resistor struct {
	N1, N2   string
	Material string
	Length   float64
	Width    float64
	Area     float64
	P1, P2   geom.Point2D
	Owner    wire.SegmentRef
}

// IsVia reports whether this resistor is a via (cross-sectional-area)
// resistor rather than a planar length/width resistor.
func (r Resistor) IsVia() bool { return r.Area != NoValue }

// Capacitor is an immutable coupling branch between two nodes of
// distinct nets, synthesized by the capacitance network builder.
type Capacitor struct {
	N1, N2        string
	Material      string
	OverlapLength float64
	Distance      float64
}
