package rgraph

import (
	"sync"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/wire"
)

// Graph is the owned arena of Resistors and Capacitors the RC extraction
// engine builds. Resistors are addressed by their slice index (a
// ResistorID), which is stable across later appends.
//
// Concurrency: guarded by muRes/muCap, matching the rest of this module's
// lock-on-mutation convention; the builder itself runs single-threaded.
type Graph struct {
	muRes sync.RWMutex
	muCap sync.RWMutex

	resistors  []Resistor
	capacitors []Capacitor
}

// ResistorID addresses one Resistor within a Graph's arena.
type ResistorID int

// NewGraph returns an empty resistor/capacitor graph.
//
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}

// AddPlanar appends a new planar resistor owned by owner and registers
// the back-reference on owner's segment in store.
//
// Complexity: O(1) amortized.
func (g *Graph) AddPlanar(store *wire.Store, n1, n2, material string, length, width float64, p1, p2 geom.Point2D, owner wire.SegmentRef) (ResistorID, error) {
	res := Resistor{
		N1: n1, N2: n2, Material: material,
		Length: length, Width: width, Area: NoValue,
		P1: p1, P2: p2, Owner: owner,
	}
	return g.append(store, res)
}

// AddVia appends a new via (cross-sectional-area) resistor owned by
// owner and registers the back-reference on owner's segment in store.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVia(store *wire.Store, n1, n2, material string, area float64, p1, p2 geom.Point2D, owner wire.SegmentRef) (ResistorID, error) {
	res := Resistor{
		N1: n1, N2: n2, Material: material,
		Length: NoValue, Width: NoValue, Area: area,
		P1: p1, P2: p2, Owner: owner,
	}
	return g.append(store, res)
}

func (g *Graph) append(store *wire.Store, res Resistor) (ResistorID, error) {
	g.muRes.Lock()
	id := ResistorID(len(g.resistors))
	g.resistors = append(g.resistors, res)
	g.muRes.Unlock()

	if err := store.AddResistorRef(res.Owner, int(id)); err != nil {
		return id, err
	}
	return id, nil
}

// Get returns a copy of the resistor identified by id.
//
// Complexity: O(1).
func (g *Graph) Get(id ResistorID) (Resistor, error) {
	g.muRes.RLock()
	defer g.muRes.RUnlock()

	if int(id) < 0 || int(id) >= len(g.resistors) {
		return Resistor{}, ErrResistorNotFound
	}
	return g.resistors[id], nil
}

// Set overwrites the resistor identified by id.
//
// Complexity: O(1).
func (g *Graph) Set(id ResistorID, res Resistor) error {
	g.muRes.Lock()
	defer g.muRes.Unlock()

	if int(id) < 0 || int(id) >= len(g.resistors) {
		return ErrResistorNotFound
	}
	g.resistors[id] = res
	return nil
}

// Resistors returns every resistor in arena (construction) order.
//
// Complexity: O(1), returns an aliasing slice; callers must not retain
// it across further Graph mutation.
func (g *Graph) Resistors() []Resistor {
	g.muRes.RLock()
	defer g.muRes.RUnlock()

	return g.resistors
}

// Reparent moves the resistor identified by id from its current owner to
// newOwner: it removes the back-reference from the old owner's segment
// and appends it to newOwner's, then updates the resistor's Owner field.
//
// Complexity: O(k) where k is the old owner's resistor count.
func (g *Graph) Reparent(store *wire.Store, id ResistorID, newOwner wire.SegmentRef) error {
	res, err := g.Get(id)
	if err != nil {
		return err
	}
	if res.Owner == newOwner {
		return nil
	}
	if err := store.RemoveResistorRef(res.Owner, int(id)); err != nil {
		return err
	}
	if err := store.AddResistorRef(newOwner, int(id)); err != nil {
		return err
	}
	res.Owner = newOwner
	return g.Set(id, res)
}

// AddCapacitor appends a new coupling capacitor.
//
// Complexity: O(1) amortized.
func (g *Graph) AddCapacitor(n1, n2, material string, overlapLength, distance float64) {
	g.muCap.Lock()
	defer g.muCap.Unlock()

	g.capacitors = append(g.capacitors, Capacitor{
		N1: n1, N2: n2, Material: material,
		OverlapLength: overlapLength, Distance: distance,
	})
}

// Capacitors returns every capacitor in construction order.
//
// Complexity: O(1), returns an aliasing slice.
func (g *Graph) Capacitors() []Capacitor {
	g.muCap.RLock()
	defer g.muCap.RUnlock()

	return g.capacitors
}
