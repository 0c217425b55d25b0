package network

import (
	"github.com/rs/zerolog"

	"github.com/phydb-rc/rcnet/rgraph"
	"github.com/phydb-rc/rcnet/wire"
)

// BuildResistorNetwork runs the four-pass resistor network builder
// against every segment the store holds:
//
//  1. one intrinsic planar resistor per non-via segment;
//  2. stitching resistors along each segment's declared horizontal and
//     vertical predecessor connections;
//  3. same-net, same-layer corner-touch fusing between segment pairs
//     whose rectangles partially overlap;
//  4. same-net, same-layer via-plane fusing between segment pairs where
//     one rectangle wholly contains the other.
//
// Passes 3 and 4 are driven by a single dispatch loop per net, matching
// the containment-vs-overlap branch the reference extractor uses (see
// fuseSameNetSameLayerPairs).
//
// Nets are visited in sorted order and segments within a net in
// insertion order throughout, so two runs over an identical store
// produce an identical resistor arena.
func BuildResistorNetwork(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, log zerolog.Logger) error {
	for _, net := range store.Nets() {
		if err := buildIntrinsicResistors(store, graph, gen, net); err != nil {
			return err
		}
	}
	for _, net := range store.Nets() {
		if err := stitchConnections(store, graph, gen, net); err != nil {
			return err
		}
	}
	for _, net := range store.Nets() {
		if err := fuseSameNetSameLayerPairs(store, graph, gen, log, net); err != nil {
			return err
		}
	}
	return nil
}

// buildIntrinsicResistors is pass 1: every non-via segment gets exactly
// one planar resistor spanning its own centerline, with two freshly
// synthesized node IDs.
func buildIntrinsicResistors(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, net string) error {
	segs := store.Segments(net)
	if len(segs) == 0 {
		return ErrEmptySegment
	}
	for _, seg := range segs {
		if seg.IsVia() {
			continue
		}
		n1 := gen.Next(net)
		n2 := gen.Next(net)
		length := axisLength(seg.P1, seg.P2)
		width := perpWidth(seg.Rect, seg.P1, seg.P2)
		if _, err := graph.AddPlanar(store, n1, n2, seg.LayerName, length, width, seg.P1, seg.P2, seg.Ref); err != nil {
			return err
		}
	}
	return nil
}

// stitchConnections is pass 2: for every segment, wire an escape resistor
// along each declared horizontal predecessor (owned by the predecessor,
// bridging its far endpoint to this segment's near endpoint), and fuse
// the shared node of each declared vertical (via-stack) predecessor by
// either creating a fresh via resistor for whichever side lacks one yet,
// or rewriting the far node (N2) of the predecessor's first existing
// resistor, planar or via.
func stitchConnections(store *wire.Store, graph *rgraph.Graph, gen *rgraph.NodeIDGen, net string) error {
	for _, seg := range store.Segments(net) {
		for _, predRef := range seg.HorizontalConnections {
			pred, err := store.Get(predRef)
			if err != nil {
				return err
			}
			n1 := gen.Next(net)
			n2 := gen.Next(net)
			length := axisLength(pred.P2, seg.P1)
			width := perpWidth(seg.Rect, seg.P1, seg.P2)
			if _, err := graph.AddPlanar(store, n1, n2, seg.LayerName, length, width, pred.P2, seg.P1, predRef); err != nil {
				return err
			}
		}

		for _, predRef := range seg.VerticalConnections {
			pred, err := store.Get(predRef)
			if err != nil {
				return err
			}

			var segBottomNode string
			if len(seg.ResistorIDs) == 0 {
				segBottomNode = gen.Next(net)
				top := gen.Next(net)
				if _, err := graph.AddVia(store, segBottomNode, top, seg.LayerName, seg.Rect.Area(), seg.P1, seg.P2, seg.Ref); err != nil {
					return err
				}
			} else {
				r, err := graph.Get(rgraph.ResistorID(seg.ResistorIDs[0]))
				if err != nil {
					return err
				}
				segBottomNode = r.N1
			}

			if len(pred.ResistorIDs) == 0 {
				bottom := gen.Next(net)
				if _, err := graph.AddVia(store, bottom, segBottomNode, pred.LayerName, pred.Rect.Area(), pred.P1, pred.P2, predRef); err != nil {
					return err
				}
			} else {
				r, err := graph.Get(rgraph.ResistorID(pred.ResistorIDs[0]))
				if err != nil {
					return err
				}
				r.N2 = segBottomNode
				if err := graph.Set(rgraph.ResistorID(pred.ResistorIDs[0]), r); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func canonicalPairKey(a, b wire.SegmentRef) [2]wire.SegmentRef {
	if a.Net < b.Net || (a.Net == b.Net && a.Index < b.Index) {
		return [2]wire.SegmentRef{a, b}
	}
	return [2]wire.SegmentRef{b, a}
}
