package network

import (
	"github.com/rs/zerolog"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/rgraph"
	"github.com/phydb-rc/rcnet/wire"
)

// fuseSameNetSameLayerPairs walks every same-layer pair of segments on net
// (in insertion order, i < j) and dispatches each to the via-plane fuse
// (one rectangle wholly contains the other) or the corner-touch fuse (the
// rectangles partially overlap), mirroring the reference extractor's
// single combined pairwise loop. Pairs where either segment does not yet
// own a resistor, or where seg does not contain either of other's corners, are
// skipped — the latter guard is asymmetric by design in the reference
// algorithm: it is seg's containment of other's corners that gates
// processing for a given ordered pair, not the reverse.
func fuseSameNetSameLayerPairs(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger, net string) error {
	segs := store.Segments(net)
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			seg, other := segs[i], segs[j]
			if seg.LayerName != other.LayerName {
				continue
			}
			if len(seg.ResistorIDs) == 0 || len(other.ResistorIDs) == 0 {
				continue
			}

			segContainsOtherLL := geom.ContainsPoint(seg.Rect, other.Rect.LL())
			segContainsOtherUR := geom.ContainsPoint(seg.Rect, other.Rect.UR())
			if !segContainsOtherLL && !segContainsOtherUR {
				continue
			}

			switch {
			case segContainsOtherLL && segContainsOtherUR:
				if err := fuseContains(store, graph, gen, log, seg.Ref, other.Ref); err != nil {
					return err
				}
			case geom.ContainsPoint(other.Rect, seg.Rect.LL()) && geom.ContainsPoint(other.Rect, seg.Rect.UR()):
				if err := fuseContains(store, graph, gen, log, other.Ref, seg.Ref); err != nil {
					return err
				}
			default:
				if err := fuseOverlap(store, graph, gen, log, seg.Ref, other.Ref); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// fuseContains merges subRef's intrinsic resistor chain into superRef's,
// where superRef's rectangle wholly contains subRef's. If superRef owns
// no resistor yet, a fresh via resistor is created spanning its own
// rectangle and linked to sub's near node. Otherwise the existing
// resistor on superRef whose endpoint coincides with sub's connection
// point is located (splitting it first if the coincidence point is
// strictly interior to its centerline rather than an endpoint) and sub's
// resistor is rewired to reference that node directly. A superRef with no
// matching endpoint is a silent no-op: the pair was already fused by an
// earlier call in the pairwise sweep.
func fuseContains(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger, superRef, subRef wire.SegmentRef) error {
	sub, err := store.Get(subRef)
	if err != nil {
		return err
	}
	if len(sub.ResistorIDs) == 0 {
		return nil
	}
	super, err := store.Get(superRef)
	if err != nil {
		return err
	}

	subHasVerticalPred := len(sub.VerticalConnections) > 0
	subPt := sub.P1
	if subHasVerticalPred {
		subPt = sub.P2
	}

	subRes0ID := rgraph.ResistorID(sub.ResistorIDs[0])
	subRes0, err := graph.Get(subRes0ID)
	if err != nil {
		return err
	}

	if len(super.ResistorIDs) == 0 {
		center := rectCenter(super.Rect)
		area := super.Rect.Area()
		if subHasVerticalPred {
			_, err = graph.AddVia(store, subRes0.N2, gen.Next(super.NetName()), super.LayerName, area, subPt, center, superRef)
		} else {
			_, err = graph.AddVia(store, gen.Next(super.NetName()), subRes0.N1, super.LayerName, area, center, subPt, superRef)
		}
		return err
	}

	for _, rid := range append([]int{}, super.ResistorIDs...) {
		r, err := graph.Get(rgraph.ResistorID(rid))
		if err != nil {
			return err
		}

		switch {
		case r.P1 == subPt:
			if subHasVerticalPred {
				subRes0.N2 = r.N1
			} else {
				link := r.N1
				if r.IsVia() {
					link = r.N2
				}
				if link == subRes0.N2 {
					log.Warn().Str("net", superRef.Net).Msg("network: fuseContains would merge a node with itself")
				}
				subRes0.N1 = link
			}
			return graph.Set(subRes0ID, subRes0)

		case r.P2 == subPt:
			if subHasVerticalPred {
				link := r.N2
				if r.IsVia() {
					link = r.N1
				}
				subRes0.N2 = link
			} else {
				subRes0.N1 = r.N2
			}
			return graph.Set(subRes0ID, subRes0)

		case !r.IsVia() && r.P1.X == r.P2.X && r.P1.X == subPt.X && strictlyBetween(subPt.Y, r.P1.Y, r.P2.Y):
			newID, err := graph.Split(store, gen, rgraph.ResistorID(rid), subPt)
			if err != nil {
				log.Warn().Err(err).Str("net", superRef.Net).Msg("network: fuseContains split failed")
				return nil
			}
			split, err := graph.Get(newID)
			if err != nil {
				return err
			}
			if subHasVerticalPred {
				subRes0.N2 = split.N1
			} else {
				subRes0.N1 = split.N1
			}
			return graph.Set(subRes0ID, subRes0)

		case !r.IsVia() && r.P1.Y == r.P2.Y && r.P1.Y == subPt.Y && strictlyBetween(subPt.X, r.P1.X, r.P2.X):
			newID, err := graph.Split(store, gen, rgraph.ResistorID(rid), subPt)
			if err != nil {
				log.Warn().Err(err).Str("net", superRef.Net).Msg("network: fuseContains split failed")
				return nil
			}
			split, err := graph.Get(newID)
			if err != nil {
				return err
			}
			if subHasVerticalPred {
				subRes0.N2 = split.N1
			} else {
				subRes0.N1 = split.N1
			}
			return graph.Set(subRes0ID, subRes0)
		}
	}
	return nil
}

// fuseOverlap handles a same-layer pair whose rectangles partially
// overlap at a corner rather than nest. It dispatches to whichever of
// seg1/seg2 runs perpendicular to, and geometrically cuts across, the
// other's centerline span.
func fuseOverlap(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger, ref1, ref2 wire.SegmentRef) error {
	seg1, err := store.Get(ref1)
	if err != nil {
		return err
	}
	seg2, err := store.Get(ref2)
	if err != nil {
		return err
	}
	if len(seg1.ResistorIDs) == 0 || len(seg2.ResistorIDs) == 0 {
		return nil
	}

	switch {
	case seg1.P1.X == seg1.P2.X && strictlyBetween(seg1.P1.X, seg2.P1.X, seg2.P2.X):
		return cutVertically(store, graph, gen, log, seg1, ref1, seg2, ref2)
	case seg1.P1.Y == seg1.P2.Y && strictlyBetween(seg1.P1.Y, seg2.P1.Y, seg2.P2.Y):
		return cutHorizontally(store, graph, gen, log, seg1, ref1, seg2, ref2)
	case seg2.P1.X == seg2.P2.X && strictlyBetween(seg2.P1.X, seg1.P1.X, seg1.P2.X):
		return cutVertically(store, graph, gen, log, seg2, ref2, seg1, ref1)
	case seg2.P1.Y == seg2.P2.Y && strictlyBetween(seg2.P1.Y, seg1.P1.Y, seg1.P2.Y):
		return cutHorizontally(store, graph, gen, log, seg2, ref2, seg1, ref1)
	}

	// Neither run cuts perpendicularly across the other: the corner
	// touch is two collinear, same-orientation segments abutting
	// end to end (the common case of a routed wire stitched across a
	// via-free straight run). weldTouchingEndpoints folds any resistor
	// endpoints the two segments share at that corner into one node ID
	// so the chain stays electrically connected.
	return weldTouchingEndpoints(graph, seg1, seg2)
}

// weldTouchingEndpoints finds every resistor endpoint owned by seg1 or
// seg2 that sits at the exact same coordinate as another such endpoint,
// and rewrites them to share a single node ID. It folds chains of any
// length (for example an intrinsic resistor, a zero-length stitch
// resistor, and a second intrinsic resistor all meeting at one point)
// in a single pass by grouping every touched endpoint by coordinate and
// collapsing each group onto its first member, rather than welding pairs
// one at a time.
func weldTouchingEndpoints(graph *rgraph.Graph, seg1, seg2 *wire.Segment) error {
	byPoint := make(map[geom.Point2D][]string)
	record := func(ids []int) error {
		for _, rid := range ids {
			r, err := graph.Get(rgraph.ResistorID(rid))
			if err != nil {
				return err
			}
			byPoint[r.P1] = append(byPoint[r.P1], r.N1)
			byPoint[r.P2] = append(byPoint[r.P2], r.N2)
		}
		return nil
	}
	if err := record(seg1.ResistorIDs); err != nil {
		return err
	}
	if err := record(seg2.ResistorIDs); err != nil {
		return err
	}

	rewrite := make(map[string]string)
	for _, nodes := range byPoint {
		if len(nodes) < 2 {
			continue
		}
		canon := nodes[0]
		for _, n := range nodes[1:] {
			if n != canon {
				rewrite[n] = canon
			}
		}
	}
	if len(rewrite) == 0 {
		return nil
	}

	apply := func(ids []int) error {
		for _, rid := range ids {
			r, err := graph.Get(rgraph.ResistorID(rid))
			if err != nil {
				return err
			}
			changed := false
			if repl, ok := rewrite[r.N1]; ok {
				r.N1, changed = repl, true
			}
			if repl, ok := rewrite[r.N2]; ok {
				r.N2, changed = repl, true
			}
			if changed {
				if err := graph.Set(rgraph.ResistorID(rid), r); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := apply(seg1.ResistorIDs); err != nil {
		return err
	}
	return apply(seg2.ResistorIDs)
}

// cutVertically handles cutter (a vertical run, constant X) crossing
// target's horizontal span. It splits the first of target's resistors
// whose own centerline strictly contains cutter's X coordinate, drops an
// escape junction at target's near edge in Y, and bridges that junction
// to the closest endpoint among cutter's own resistors.
func cutVertically(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger, cutter *wire.Segment, cutterRef wire.SegmentRef, target *wire.Segment, targetRef wire.SegmentRef) error {
	for _, rid := range append([]int{}, target.ResistorIDs...) {
		res, err := graph.Get(rgraph.ResistorID(rid))
		if err != nil {
			return err
		}
		if !strictlyBetween(cutter.P1.X, res.P1.X, res.P2.X) {
			continue
		}

		splitPt := geom.Point2D{X: cutter.P1.X, Y: res.P1.Y}
		newID, err := graph.Split(store, gen, rgraph.ResistorID(rid), splitPt)
		if err != nil {
			log.Warn().Err(err).Str("net", targetRef.Net).Msg("network: cutVertically split failed")
			return nil
		}
		newRes, err := graph.Get(newID)
		if err != nil {
			return err
		}

		escapeY := target.Rect.LL().Y
		if cutter.P1.Y > res.P1.Y {
			escapeY = target.Rect.UR().Y
		}
		escapeID := gen.Next(target.NetName())
		width := cutter.Rect.Width()
		escapeEnd := geom.Point2D{X: splitPt.X, Y: escapeY}

		if _, err := graph.AddPlanar(store, newRes.N1, escapeID, target.LayerName, absF(splitPt.Y-escapeY), width, splitPt, escapeEnd, targetRef); err != nil {
			return err
		}

		minDst, minDstID, minDstPt, found := nearestEndpointToY(graph, cutter.ResistorIDs, escapeY)
		if !found {
			return nil
		}
		_, err = graph.AddPlanar(store, escapeID, minDstID, cutter.LayerName, minDst, width, escapeEnd, minDstPt, cutterRef)
		return err
	}
	return nil
}

// cutHorizontally is the axis-swapped counterpart of cutVertically: cutter
// is a horizontal run (constant Y) crossing target's vertical span.
func cutHorizontally(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger, cutter *wire.Segment, cutterRef wire.SegmentRef, target *wire.Segment, targetRef wire.SegmentRef) error {
	for _, rid := range append([]int{}, target.ResistorIDs...) {
		res, err := graph.Get(rgraph.ResistorID(rid))
		if err != nil {
			return err
		}
		if !strictlyBetween(cutter.P1.Y, res.P1.Y, res.P2.Y) {
			continue
		}

		splitPt := geom.Point2D{X: res.P1.X, Y: cutter.P1.Y}
		newID, err := graph.Split(store, gen, rgraph.ResistorID(rid), splitPt)
		if err != nil {
			log.Warn().Err(err).Str("net", targetRef.Net).Msg("network: cutHorizontally split failed")
			return nil
		}
		newRes, err := graph.Get(newID)
		if err != nil {
			return err
		}

		escapeX := target.Rect.LL().X
		if cutter.P1.X > res.P1.X {
			escapeX = target.Rect.UR().X
		}
		escapeID := gen.Next(target.NetName())
		width := cutter.Rect.Height()
		escapeEnd := geom.Point2D{X: escapeX, Y: splitPt.Y}

		if _, err := graph.AddPlanar(store, newRes.N1, escapeID, target.LayerName, absF(splitPt.X-escapeX), width, splitPt, escapeEnd, targetRef); err != nil {
			return err
		}

		minDst, minDstID, minDstPt, found := nearestEndpointToX(graph, cutter.ResistorIDs, escapeX)
		if !found {
			return nil
		}
		_, err = graph.AddPlanar(store, escapeID, minDstID, cutter.LayerName, minDst, width, escapeEnd, minDstPt, cutterRef)
		return err
	}
	return nil
}

// nearestEndpointToY scans resistorIDs for the resistor endpoint closest
// to targetY and returns the distance, that resistor's N1 node (matching
// the reference extractor's N1-only node-id choice regardless of which
// endpoint, P1 or P2, is actually closest), and the winning point.
func nearestEndpointToY(graph *rgraph.Graph, resistorIDs []int, targetY float64) (dist float64, nodeID string, pt geom.Point2D, found bool) {
	best := -1.0
	for _, rid := range resistorIDs {
		r, err := graph.Get(rgraph.ResistorID(rid))
		if err != nil {
			continue
		}
		if d := absF(r.P1.Y - targetY); best < 0 || d < best {
			best, nodeID, pt, found = d, r.N1, r.P1, true
		}
		if d := absF(r.P2.Y - targetY); best < 0 || d < best {
			best, nodeID, pt, found = d, r.N1, r.P2, true
		}
	}
	return best, nodeID, pt, found
}

// nearestEndpointToX is the axis-swapped counterpart of nearestEndpointToY.
func nearestEndpointToX(graph *rgraph.Graph, resistorIDs []int, targetX float64) (dist float64, nodeID string, pt geom.Point2D, found bool) {
	best := -1.0
	for _, rid := range resistorIDs {
		r, err := graph.Get(rgraph.ResistorID(rid))
		if err != nil {
			continue
		}
		if d := absF(r.P1.X - targetX); best < 0 || d < best {
			best, nodeID, pt, found = d, r.N1, r.P1, true
		}
		if d := absF(r.P2.X - targetX); best < 0 || d < best {
			best, nodeID, pt, found = d, r.N1, r.P2, true
		}
	}
	return best, nodeID, pt, found
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
