package rcio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/rgraph"
	"github.com/phydb-rc/rcnet/wire"
)

func TestWriteFormatsResistorsAndCapacitors(t *testing.T) {
	store := wire.NewStore()
	planarOwner, err := store.Add("A", "M1", geom.NewRect2D(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 100, Y: 10}),
		geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 100, Y: 5}, nil, nil)
	require.NoError(t, err)
	viaOwner, err := store.Add("A", "via12", geom.NewRect2D(geom.Point2D{X: 95, Y: 0}, geom.Point2D{X: 105, Y: 10}),
		geom.Point2D{X: 100, Y: 5}, geom.Point2D{X: 100, Y: 5}, nil, nil)
	require.NoError(t, err)

	graph := rgraph.NewGraph()
	_, err = graph.AddPlanar(store, "A{0}", "A{1}", "M1", 100, 10, geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 100, Y: 5}, planarOwner)
	require.NoError(t, err)
	_, err = graph.AddVia(store, "A{1}", "A{2}", "via12", 100, geom.Point2D{X: 100, Y: 5}, geom.Point2D{X: 100, Y: 5}, viaOwner)
	require.NoError(t, err)
	graph.AddCapacitor("A{0}", "B{0}", "M1", 100, 10)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, graph))

	got := buf.String()
	require.Equal(t,
		"Resistor<node1='A{0}', node2='A{1}', length=100, width=10, layer=M1, segment-id='A:0'>\n"+
			"VerticalResistor<lower-node='A{1}', upper-node='A{2}', cross-sectional-area=100, layer=via12, segment-id='A:1'>\n"+
			"Capacitor<node1='A{0}', node2='B{0}', overlap-length=100, distance=10>\n",
		got,
	)
}
