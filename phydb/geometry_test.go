package phydb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/wire"
)

func rectAt(llx, lly, urx, ury float64) geom.Rect2D {
	return geom.NewRect2D(geom.Point2D{X: llx, Y: lly}, geom.Point2D{X: urx, Y: ury})
}

// TestGenerateRCNetworkEndToEnd ingests a small two-net layout (a coupled
// pair of parallel wires) through the public DB surface and checks the
// resistor and capacitor counts the pipeline as a whole produces.
func TestGenerateRCNetworkEndToEnd(t *testing.T) {
	db := New()

	_, err := db.AddWireSegment("A", "M1", rectAt(0, 0, 100, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 100, Y: 5}, nil, nil)
	require.NoError(t, err)
	_, err = db.AddWireSegment("B", "M1", rectAt(0, 20, 100, 30), geom.Point2D{X: 0, Y: 25}, geom.Point2D{X: 100, Y: 25}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, db.GenerateRCNetwork())

	require.Len(t, db.Resistors(), 4, "coupling splits each wire's resistor in two")
	require.Len(t, db.Capacitors(), 1)
	require.Equal(t, 100.0, db.Capacitors()[0].OverlapLength)
	require.Equal(t, 10.0, db.Capacitors()[0].Distance)
}

// TestGenerateRCNetworkIsIdempotent calls GenerateRCNetwork twice on the
// same DB and checks the second call adds nothing further.
func TestGenerateRCNetworkIsIdempotent(t *testing.T) {
	db := New()
	_, err := db.AddWireSegment("A", "M1", rectAt(0, 0, 100, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 100, Y: 5}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, db.GenerateRCNetwork())
	firstCount := len(db.Resistors())

	require.NoError(t, db.GenerateRCNetwork())
	require.Equal(t, firstCount, len(db.Resistors()))
}

// TestGenerateRCNetworkDeterministic builds two independent DBs from the
// identical ingestion sequence and checks their emitted text streams are
// byte-identical.
func TestGenerateRCNetworkDeterministic(t *testing.T) {
	build := func() string {
		db := New()
		_, err := db.AddWireSegment("A", "M1", rectAt(0, 0, 50, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 50, Y: 5}, nil, nil)
		require.NoError(t, err)
		ref1, err := db.AddWireSegment("A", "M1", rectAt(50, 0, 100, 10), geom.Point2D{X: 50, Y: 5}, geom.Point2D{X: 100, Y: 5}, []wire.SegmentRef{{Net: "A", Index: 0}}, nil)
		require.NoError(t, err)
		_ = ref1
		require.NoError(t, db.GenerateRCNetwork())

		var buf bytes.Buffer
		require.NoError(t, db.WriteRCNetwork(&buf))
		return buf.String()
	}

	require.Equal(t, build(), build())
}

// TestLoadFixtureRejectsEmptyPath covers the fixture loader's empty-path
// guard.
func TestLoadFixtureRejectsEmptyPath(t *testing.T) {
	_, err := LoadFixture("")
	require.ErrorIs(t, err, ErrEmptyInputPath)
}

// TestIngestResolvesPredecessorsByIndex checks that Ingest turns a
// fixture's integer predecessor indices into SegmentRefs against the same
// net's earlier entries, and that the resulting segments link up.
func TestIngestResolvesPredecessorsByIndex(t *testing.T) {
	db := New()
	inputs := []WireInput{
		{
			NetName:   "A",
			LayerName: "M1",
			Rect:      RectInput{LLX: 0, LLY: 0, URX: 50, URY: 10},
			P1:        PointInput{X: 0, Y: 5},
			P2:        PointInput{X: 50, Y: 5},
		},
		{
			NetName:                "A",
			LayerName:              "M1",
			Rect:                   RectInput{LLX: 50, LLY: 0, URX: 100, URY: 10},
			P1:                     PointInput{X: 50, Y: 5},
			P2:                     PointInput{X: 100, Y: 5},
			HorizontalPredecessors: []int{0},
		},
	}
	require.NoError(t, db.Ingest(inputs))

	segs := db.Segments("A")
	require.Len(t, segs, 2)
	require.Equal(t, []wire.SegmentRef{{Net: "A", Index: 0}}, segs[1].HorizontalConnections)
}
