package phydb

import (
	"io"
	"sync"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/network"
	"github.com/phydb-rc/rcnet/partition"
	"github.com/phydb-rc/rcnet/rcio"
	"github.com/phydb-rc/rcnet/rgraph"
	"github.com/phydb-rc/rcnet/wire"
)

// DB is the aggregate root that owns the net-to-segment store, the
// per-layer spatial partition, and the resistor/capacitor graph, and
// runs the builder exactly once over them.
//
// Lifecycle: segments are added incrementally via AddWireSegment while
// the spatial index is populated alongside; once every net is ingested,
// GenerateRCNetwork runs the four-pass resistor builder followed by the
// capacitance builder, after which the DB is read-only. Calling
// GenerateRCNetwork again is a soft warning and a no-op.
type DB struct {
	mu   sync.Mutex
	opts Options

	store     *wire.Store
	partition *partition.Manager
	graph     *rgraph.Graph
	nodeGen   *rgraph.NodeIDGen

	built bool
}

// New returns an empty DB configured by opts, defaulting to
// DefaultOptions.
//
// Complexity: O(1).
func New(opts ...Option) *DB {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &DB{
		opts:      o,
		store:     wire.NewStore(),
		partition: partition.NewManager(o.PartitionSize),
		graph:     rgraph.NewGraph(),
		nodeGen:   rgraph.NewNodeIDGen(),
	}
}

// AddWireSegment ingests one routed rectangle: it appends the segment to
// its net in the store and indexes it in the spatial partition under its
// layer. horizontalPreds/verticalPreds are the earlier same-net segments
// this one continues planarly or sits atop in a via stack — the DB never
// infers these after the fact.
//
// Complexity: O(1) amortized plus O(k) in the number of partition
// buckets the rectangle spans.
func (db *DB) AddWireSegment(net, layer string, rect geom.Rect2D, p1, p2 geom.Point2D, horizontalPreds, verticalPreds []wire.SegmentRef) (wire.SegmentRef, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	ref, err := db.store.Add(net, layer, rect, p1, p2, horizontalPreds, verticalPreds)
	if err != nil {
		return wire.SegmentRef{}, err
	}
	db.partition.Add(layer, ref, rect)
	return ref, nil
}

// GenerateRCNetwork runs the resistor network builder followed by the
// capacitance network builder over every segment ingested so far.
// Re-invoking it on a DB whose networks are already populated logs a
// soft warning and returns nil without doing further work.
//
// Complexity: near-linear in the number of segments given a well-tuned
// partition size.
func (db *DB) GenerateRCNetwork() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.built {
		db.opts.Logger.Warn().Msg("phydb: GenerateRCNetwork called on an already-built DB; no-op")
		return nil
	}

	if err := network.BuildResistorNetwork(db.store, db.graph, db.nodeGen, db.opts.Logger); err != nil {
		return err
	}
	if err := network.BuildCapacitanceNetwork(db.store, db.graph, db.nodeGen, db.partition, db.opts.NeighborhoodBins, db.opts.Logger); err != nil {
		return err
	}

	db.built = true
	return nil
}

// WriteRCNetwork serializes the resistor and capacitor lists to w: every
// resistor first (in arena construction order), then every capacitor,
// one element per line.
//
// Complexity: O(R + C) in the number of resistors and capacitors.
func (db *DB) WriteRCNetwork(w io.Writer) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return rcio.Write(w, db.graph)
}

// Resistors returns every resistor built so far, in arena order. Exposed
// primarily for tests asserting the builder's structural properties.
func (db *DB) Resistors() []rgraph.Resistor { return db.graph.Resistors() }

// Capacitors returns every capacitor built so far, in arena order.
func (db *DB) Capacitors() []rgraph.Capacitor { return db.graph.Capacitors() }

// Segments returns the ordered segments of net, for test and debugging
// use.
func (db *DB) Segments(net string) []*wire.Segment { return db.store.Segments(net) }

// Nets returns every net name the DB has ingested segments for, sorted.
func (db *DB) Nets() []string { return db.store.Nets() }
