package partition

import (
	"errors"
	"sort"
	"sync"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/wire"
)

// ErrUnknownLayer indicates a capacitance query against a layer the
// Manager has never seen a segment for. This is a programmer error, not a
// recoverable condition: the index must be populated (via Add) before any
// query runs against that layer.
var ErrUnknownLayer = errors.New("partition: query against an unpopulated layer")

// bucketID is the integer grid-cell coordinate pair a rectangle's corners
// hash to: floor(x/size), floor(y/size).
type bucketID struct{ bx, by int }

// Index is a single layer's uniform fixed-grid bucket index.
type Index struct {
	size    float64
	buckets map[bucketID][]wire.SegmentRef
}

func newIndex(size float64) *Index {
	return &Index{size: size, buckets: make(map[bucketID][]wire.SegmentRef)}
}

func (ix *Index) add(ref wire.SegmentRef, rect geom.Rect2D) {
	ll, ur := rect.LL(), rect.UR()
	loX, hiX := geom.Bin(ll.X, ix.size), geom.Bin(ur.X, ix.size)
	loY, hiY := geom.Bin(ll.Y, ix.size), geom.Bin(ur.Y, ix.size)
	for bx := loX; bx <= hiX; bx++ {
		for by := loY; by <= hiY; by++ {
			id := bucketID{bx, by}
			ix.buckets[id] = append(ix.buckets[id], ref)
		}
	}
}

// Manager owns one uniform-grid Index per metal layer and answers
// cross-net proximity queries against them.
//
// Concurrency: guarded by a single RWMutex, mirroring the rest of this
// module's ingestion-time locking convention; the capacitance builder
// itself runs single-threaded against a fully-populated Manager.
type Manager struct {
	mu     sync.RWMutex
	size   float64
	layers map[string]*Index
}

// NewManager returns a Manager whose per-layer indexes use the given
// bucket size (spec default BIN_WIDTH = 750 design database units).
//
// Complexity: O(1).
func NewManager(size float64) *Manager {
	return &Manager{size: size, layers: make(map[string]*Index)}
}

// Add inserts ref's rectangle into every bucket it overlaps on layer,
// creating the layer's Index on first use.
//
// Complexity: O(k) in the number of buckets the rectangle spans.
func (m *Manager) Add(layer string, ref wire.SegmentRef, rect geom.Rect2D) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ix, ok := m.layers[layer]
	if !ok {
		ix = newIndex(m.size)
		m.layers[layer] = ix
	}
	ix.add(ref, rect)
}

// Neighbors returns the deduplicated, deterministically ordered union of
// segment references on layer whose bucket lies within bins cells of
// rect's own bucket range, excluding any segment on netName. It returns
// ErrUnknownLayer if layer was never populated via Add.
//
// Complexity: O(b) where b is the number of buckets scanned,
// (2*bins + span) per axis.
func (m *Manager) Neighbors(layer string, rect geom.Rect2D, netName string, bins int) ([]wire.SegmentRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ix, ok := m.layers[layer]
	if !ok {
		return nil, ErrUnknownLayer
	}

	ll, ur := rect.LL(), rect.UR()
	loX, hiX := geom.Bin(ll.X, ix.size)-bins, geom.Bin(ur.X, ix.size)+bins
	loY, hiY := geom.Bin(ll.Y, ix.size)-bins, geom.Bin(ur.Y, ix.size)+bins

	seen := make(map[wire.SegmentRef]struct{})
	for bx := loX; bx <= hiX; bx++ {
		for by := loY; by <= hiY; by++ {
			for _, ref := range ix.buckets[bucketID{bx, by}] {
				if ref.Net == netName {
					continue
				}
				seen[ref] = struct{}{}
			}
		}
	}

	out := make([]wire.SegmentRef, 0, len(seen))
	for ref := range seen {
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Net != out[j].Net {
			return out[i].Net < out[j].Net
		}
		return out[i].Index < out[j].Index
	})
	return out, nil
}
