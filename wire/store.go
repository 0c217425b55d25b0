package wire

import (
	"sort"
	"sync"

	"github.com/phydb-rc/rcnet/geom"
)

// Store is the mapping from net name to an ordered vector of owned
// WireSegments. It is the sole owner of every Segment; all other packages
// address segments through a SegmentRef and look them up here.
//
// muNets guards nets and the per-segment mutable fields (Rect,
// ResistorIDs). Real DEF-path traversal upstream of this package may
// stream segments from multiple producer goroutines even though the RC
// extraction batch phase that reads the Store back out is single-threaded,
// so ingestion is lock-protected the same way core.Graph guards vertex
// and edge mutation in the wider graph-tooling convention this module
// follows.
type Store struct {
	muNets sync.RWMutex
	nets   map[string][]*Segment
}

// NewStore returns an empty Store.
//
// Complexity: O(1).
func NewStore() *Store {
	return &Store{nets: make(map[string][]*Segment)}
}

// Add appends a new segment to net, tagging it with the caller-supplied
// set of earlier same-net segments it continues planarly
// (horizontalPreds) or sits atop in a via stack (verticalPreds). The
// Store never infers these after the fact — the DEF-path traversal
// collaborator must supply them.
//
// Returns ErrEmptyNetName, ErrMalformedSegment, ErrDegenerateVia, or
// ErrBadPredecessor on invalid input; the segment is not added in that
// case.
//
// Complexity: O(1) amortized plus O(len(preds)) validation.
func (s *Store) Add(net, layer string, rect geom.Rect2D, p1, p2 geom.Point2D, horizontalPreds, verticalPreds []SegmentRef) (SegmentRef, error) {
	if net == "" {
		return SegmentRef{}, ErrEmptyNetName
	}

	isVia := p1 == p2
	if isVia {
		if rect.Width() == 0 || rect.Height() == 0 {
			return SegmentRef{}, ErrDegenerateVia
		}
	} else if p1.X != p2.X && p1.Y != p2.Y {
		// A planar centerline must run along one axis only.
		return SegmentRef{}, ErrMalformedSegment
	}

	s.muNets.Lock()
	defer s.muNets.Unlock()

	segs := s.nets[net]
	idx := len(segs)
	for _, ref := range append(append([]SegmentRef{}, horizontalPreds...), verticalPreds...) {
		if ref.Net != net || ref.Index >= idx {
			return SegmentRef{}, ErrBadPredecessor
		}
	}

	seg := &Segment{
		Ref:                   SegmentRef{Net: net, Index: idx},
		Rect:                  rect,
		LayerName:             layer,
		P1:                    p1,
		P2:                    p2,
		HorizontalConnections: append([]SegmentRef{}, horizontalPreds...),
		VerticalConnections:   append([]SegmentRef{}, verticalPreds...),
	}
	s.nets[net] = append(segs, seg)

	return seg.Ref, nil
}

// Get returns the segment identified by ref.
//
// Complexity: O(1).
func (s *Store) Get(ref SegmentRef) (*Segment, error) {
	s.muNets.RLock()
	defer s.muNets.RUnlock()

	segs, ok := s.nets[ref.Net]
	if !ok || ref.Index < 0 || ref.Index >= len(segs) {
		return nil, ErrSegmentNotFound
	}
	return segs[ref.Index], nil
}

// Segments returns the ordered slice of segments belonging to net (nil if
// the net is unknown). The returned slice aliases internal storage and
// must be treated as read-only by callers outside this package.
//
// Complexity: O(1).
func (s *Store) Segments(net string) []*Segment {
	s.muNets.RLock()
	defer s.muNets.RUnlock()

	return s.nets[net]
}

// Nets returns every net name currently known to the Store, sorted for
// deterministic pass iteration (spec requires nets be visited in sorted
// key order so two runs over the same input yield identical node IDs).
//
// Complexity: O(N log N) in the number of nets.
func (s *Store) Nets() []string {
	s.muNets.RLock()
	defer s.muNets.RUnlock()

	nets := make([]string, 0, len(s.nets))
	for n := range s.nets {
		nets = append(nets, n)
	}
	sort.Strings(nets)
	return nets
}

// UpdateRect overwrites the rectangle of the segment identified by ref.
// The resistor network builder does not call it: its corner-touch fuse
// adds split and escape resistors but leaves every segment's rectangle
// at its ingested extent.
//
// Complexity: O(1).
func (s *Store) UpdateRect(ref SegmentRef, rect geom.Rect2D) error {
	s.muNets.Lock()
	defer s.muNets.Unlock()

	seg, err := s.getLocked(ref)
	if err != nil {
		return err
	}
	seg.Rect = rect
	return nil
}

// AddResistorRef appends a resistor back-reference to the segment
// identified by ref.
//
// Complexity: O(1) amortized.
func (s *Store) AddResistorRef(ref SegmentRef, resistorID int) error {
	s.muNets.Lock()
	defer s.muNets.Unlock()

	seg, err := s.getLocked(ref)
	if err != nil {
		return err
	}
	seg.ResistorIDs = append(seg.ResistorIDs, resistorID)
	return nil
}

// RemoveResistorRef removes one occurrence of resistorID from the
// segment identified by ref (linear scan; segments own 0..O(few)
// resistors, so this is cheap in practice). It is a no-op if the
// reference is not present.
//
// Complexity: O(k) where k is the segment's resistor count.
func (s *Store) RemoveResistorRef(ref SegmentRef, resistorID int) error {
	s.muNets.Lock()
	defer s.muNets.Unlock()

	seg, err := s.getLocked(ref)
	if err != nil {
		return err
	}
	for i, id := range seg.ResistorIDs {
		if id == resistorID {
			seg.ResistorIDs = append(seg.ResistorIDs[:i], seg.ResistorIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) getLocked(ref SegmentRef) (*Segment, error) {
	segs, ok := s.nets[ref.Net]
	if !ok || ref.Index < 0 || ref.Index >= len(segs) {
		return nil, ErrSegmentNotFound
	}
	return segs[ref.Index], nil
}
