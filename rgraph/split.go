package rgraph

import (
	"math"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/wire"
)

// Split divides the planar resistor identified by id at q, a point
// strictly interior to its centerline:
//
//   - id retains its N1, adopts a freshly generated node ID as N2, has
//     its P2 set to q, and its Length shortened to the distance from P1
//     to q.
//   - A new resistor is appended with nodes (freshID, old N2), endpoints
//     (q, old P2), Length = old Length - new Length, and the same
//     Material/Width/Owner as id.
//
// Split is only defined for planar resistors and only for points
// strictly interior to the resistor's centerline; ErrSplitVia and
// ErrSplitAtEndpoint are soft-warning conditions the caller should log
// and skip rather than treat as fatal.
//
// Complexity: O(1) amortized.
func (g *Graph) Split(store *wire.Store, gen *NodeIDGen, id ResistorID, q geom.Point2D) (ResistorID, error) {
	res, err := g.Get(id)
	if err != nil {
		return 0, err
	}
	if res.IsVia() {
		return 0, ErrSplitVia
	}

	newLen, ok := distanceAlongAxis(res.P1, res.P2, q)
	if !ok || newLen <= 0 || newLen >= res.Length {
		return 0, ErrSplitAtEndpoint
	}

	newID := gen.Next(res.Owner.Net)
	oldNodeID2 := res.N2
	oldP2 := res.P2
	oldLength := res.Length

	res.N2 = newID
	res.P2 = q
	res.Length = newLen
	if err := g.Set(id, res); err != nil {
		return 0, err
	}

	return g.AddPlanar(store, newID, oldNodeID2, res.Material, oldLength-newLen, res.Width, q, oldP2, res.Owner)
}

// distanceAlongAxis returns the distance from p1 to q measured along
// whichever axis p1/p2 differ on, and false if q does not lie strictly
// between p1 and p2 on that axis.
func distanceAlongAxis(p1, p2, q geom.Point2D) (float64, bool) {
	if p1.X != p2.X {
		lo, hi := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
		if q.X <= lo || q.X >= hi {
			return 0, false
		}
		return math.Abs(q.X - p1.X), true
	}
	lo, hi := math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)
	if q.Y <= lo || q.Y >= hi {
		return 0, false
	}
	return math.Abs(q.Y - p1.Y), true
}
