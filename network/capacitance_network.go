package network

import (
	"github.com/rs/zerolog"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/partition"
	"github.com/phydb-rc/rcnet/rgraph"
	"github.com/phydb-rc/rcnet/wire"
)

// BuildCapacitanceNetwork runs the capacitance coupling pass: for every
// segment, it queries the spatial partition for
// nearby same-layer segments of other nets, and for each distinct pair it
// has not already processed (canonical net/segment-number ordering avoids
// double-counting a pair from both sides) it attempts to couple them.
//
// A pair couples only when their rectangles overlap along at least one
// axis (x-overlap is tried first and, when present, selects the coupling
// direction; y-overlap is used only when x does not overlap) and each side's overlap midpoint falls on, or can
// be split onto, one of that segment's own resistors. Pairs failing
// either test are skipped silently — the geometry does not support a
// coupling capacitor between them.
func BuildCapacitanceNetwork(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, mgr *partition.Manager, bins int, log zerolog.Logger) error {
	processed := make(map[[2]wire.SegmentRef]struct{})

	for _, net := range store.Nets() {
		for _, seg := range store.Segments(net) {
			if len(seg.ResistorIDs) == 0 {
				continue
			}

			neighbors, err := mgr.Neighbors(seg.LayerName, seg.Rect, net, bins)
			if err != nil {
				return err
			}

			for _, nbrRef := range neighbors {
				key := canonicalPairKey(seg.Ref, nbrRef)
				if _, done := processed[key]; done {
					continue
				}
				processed[key] = struct{}{}

				nbr, err := store.Get(nbrRef)
				if err != nil {
					return err
				}
				if len(nbr.ResistorIDs) == 0 {
					continue
				}

				if err := tryCouple(store, graph, gen, log, seg, seg.Ref, nbr, nbrRef); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// tryCouple attempts to emit one capacitor between seg and nbr.
func tryCouple(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger, seg *wire.Segment, segRef wire.SegmentRef, nbr *wire.Segment, nbrRef wire.SegmentRef) error {
	const axisX, axisY = 0, 1

	var axis int
	var overlapLength, distance, overlapCenter, lo, hi float64

	if xLen, ok := geom.XOverlap(seg.Rect, nbr.Rect); ok {
		axis = axisX
		overlapLength = xLen
		lo = max64(seg.Rect.LL().X, nbr.Rect.LL().X)
		hi = min64(seg.Rect.UR().X, nbr.Rect.UR().X)
		overlapCenter = (lo + hi) / 2
		distance = min64(absF(nbr.Rect.LL().Y-seg.Rect.UR().Y), absF(nbr.Rect.UR().Y-seg.Rect.LL().Y))
	} else if yLen, ok := geom.YOverlap(seg.Rect, nbr.Rect); ok {
		axis = axisY
		overlapLength = yLen
		lo = max64(seg.Rect.LL().Y, nbr.Rect.LL().Y)
		hi = min64(seg.Rect.UR().Y, nbr.Rect.UR().Y)
		overlapCenter = (lo + hi) / 2
		distance = min64(absF(nbr.Rect.LL().X-seg.Rect.UR().X), absF(nbr.Rect.UR().X-seg.Rect.LL().X))
	} else {
		return nil
	}

	segNode, ok := findCouplingNode(store, graph, gen, log, seg.ResistorIDs, axis, overlapCenter, lo, hi)
	if !ok {
		return nil
	}
	nbrNode, ok := findCouplingNode(store, graph, gen, log, nbr.ResistorIDs, axis, overlapCenter, lo, hi)
	if !ok {
		return nil
	}

	graph.AddCapacitor(segNode, nbrNode, seg.LayerName, overlapLength, distance)
	return nil
}

// findCouplingNode locates the node ID the coupling capacitor should
// attach to on one side of the pair: first it prefers a planar resistor
// whose own centerline strictly contains overlapCenter along axis,
// splitting it there; falling back to a resistor whose centerline
// contains either edge of the projected overlap range [lo, hi], split at
// the midpoint of whatever sub-range it actually covers. A via resistor
// never qualifies: its endpoints coincide, so the strict-interior test
// can never hold for it. Splits that fail are logged and treated as a
// non-match rather than aborting the pair.
func findCouplingNode(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger, resistorIDs []int, axis int, overlapCenter, lo, hi float64) (string, bool) {
	const axisX = 0

	for _, rid := range resistorIDs {
		r, err := graph.Get(rgraph.ResistorID(rid))
		if err != nil || r.IsVia() {
			continue
		}
		if axis == axisX {
			if r.P1.Y != r.P2.Y || !strictlyBetween(overlapCenter, r.P1.X, r.P2.X) {
				continue
			}
		} else {
			if r.P1.X != r.P2.X || !strictlyBetween(overlapCenter, r.P1.Y, r.P2.Y) {
				continue
			}
		}

		var pt geom.Point2D
		if axis == axisX {
			pt = geom.Point2D{X: overlapCenter, Y: r.P1.Y}
		} else {
			pt = geom.Point2D{X: r.P1.X, Y: overlapCenter}
		}
		if node, ok := splitAndLink(store, graph, gen, log, rgraph.ResistorID(rid), pt); ok {
			return node, true
		}
	}

	for _, rid := range resistorIDs {
		r, err := graph.Get(rgraph.ResistorID(rid))
		if err != nil || r.IsVia() {
			continue
		}

		var resLo, resHi, constant float64
		if axis == axisX {
			if r.P1.Y != r.P2.Y {
				continue
			}
			resLo, resHi = minmax(r.P1.X, r.P2.X)
			constant = r.P1.Y
		} else {
			if r.P1.X != r.P2.X {
				continue
			}
			resLo, resHi = minmax(r.P1.Y, r.P2.Y)
			constant = r.P1.X
		}
		if !(strictlyBetween(hi, resLo, resHi) || strictlyBetween(lo, resLo, resHi)) {
			continue
		}

		subLo := max64(lo, resLo)
		subHi := min64(hi, resHi)
		subCenter := (subLo + subHi) / 2

		var splitPt geom.Point2D
		if axis == axisX {
			splitPt = geom.Point2D{X: subCenter, Y: constant}
		} else {
			splitPt = geom.Point2D{X: constant, Y: subCenter}
		}
		if node, ok := splitAndLink(store, graph, gen, log, rgraph.ResistorID(rid), splitPt); ok {
			return node, true
		}
	}

	return "", false
}

// splitAndLink performs the actual rgraph.Split at pt and returns the
// freshly synthesized shared node ID (the new sub-resistor's N1, which is
// the same string written as id's new N2). A split failure is a soft
// warning, not fatal.
func splitAndLink(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger, id rgraph.ResistorID, pt geom.Point2D) (string, bool) {
	newID, err := graph.Split(store, gen, id, pt)
	if err != nil {
		log.Warn().Err(err).Msg("network: capacitance split failed")
		return "", false
	}
	newRes, err := graph.Get(newID)
	if err != nil {
		return "", false
	}
	return newRes.N1, true
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
