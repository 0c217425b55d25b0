package wire

import (
	"errors"

	"github.com/phydb-rc/rcnet/geom"
)

// Sentinel errors for wire segment ingestion.
var (
	// ErrEmptyNetName indicates a segment was added with no net name.
	ErrEmptyNetName = errors.New("wire: net name is empty")
	// ErrMalformedSegment indicates a planar segment whose centerline
	// endpoints are not axis-aligned with its rectangle.
	ErrMalformedSegment = errors.New("wire: planar segment centerline is not axis-aligned with its rectangle")
	// ErrDegenerateVia indicates a via segment (p1 == p2) whose rectangle
	// has zero width or height.
	ErrDegenerateVia = errors.New("wire: via segment rectangle is degenerate")
	// ErrSegmentNotFound indicates a SegmentRef with no matching segment.
	ErrSegmentNotFound = errors.New("wire: segment not found")
	// ErrBadPredecessor indicates a connection tag referencing a segment
	// that was not already present on the same net at insertion time.
	ErrBadPredecessor = errors.New("wire: predecessor segment is not an earlier same-net segment")
)

// SegmentRef stably identifies one WireSegment by net name and its
// insertion-order index within that net. It is a value type: copying it
// never invalidates the segment it names, and it remains valid for the
// lifetime of the Store (segments are never removed).
type SegmentRef struct {
	Net   string
	Index int
}

// Segment is one physical rectangle of routing for one net, on one layer.
//
// P1 and P2 are the centerline endpoints; when they are equal the segment
// represents a via footprint rather than a planar run. HorizontalConnections
// and VerticalConnections are back-references to earlier same-net segments
// supplied by the caller at insertion time (see Store.Add) — the package
// never infers them after the fact. ResistorIDs are back-references into
// whichever rgraph.Graph owns the resistors built from this segment; they
// are opaque arena indices here so this package need not import rgraph.
type Segment struct {
	Ref                   SegmentRef
	Rect                  geom.Rect2D
	LayerName             string
	P1, P2                geom.Point2D
	HorizontalConnections []SegmentRef
	VerticalConnections   []SegmentRef
	ResistorIDs           []int
}

// NetName returns the net this segment belongs to.
func (s *Segment) NetName() string { return s.Ref.Net }

// SegmentNumber returns the segment's unique, insertion-order index
// within its net.
func (s *Segment) SegmentNumber() int { return s.Ref.Index }

// IsVia reports whether this segment is a zero-length via footprint
// (P1 == P2) rather than a planar run.
func (s *Segment) IsVia() bool { return s.P1 == s.P2 }
