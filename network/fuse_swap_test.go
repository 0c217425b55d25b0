package network

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/rgraph"
	"github.com/phydb-rc/rcnet/wire"
)

// TestFuseContainsPlanarEndpointUsesNearNode exercises fuseContains
// directly against a super segment whose existing planar resistor
// touches the sub segment's connection point at its P1: the sub
// resistor's near node must be rewired to the super resistor's own near
// node (N1), not its far node. A planar resistor contributes its N1 at
// this junction; only a via resistor contributes N2 here (its near and
// far nodes sit at the bottom and top of the via stack respectively, and
// P1 is the via's single coincident point). Swapping that selection is
// the kind of one-sided transcription slip this test is meant to catch.
func TestFuseContainsPlanarEndpointUsesNearNode(t *testing.T) {
	store := wire.NewStore()
	superRef, err := store.Add("A", "M1", geom.NewRect2D(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 100, Y: 10}),
		geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 100, Y: 5}, nil, nil)
	require.NoError(t, err)
	subRef, err := store.Add("A", "M1", geom.NewRect2D(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 10, Y: 10}),
		geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 10, Y: 5}, nil, nil)
	require.NoError(t, err)

	graph := rgraph.NewGraph()
	_, err = graph.AddPlanar(store, "S0", "S1", "M1", 100, 10, geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 100, Y: 5}, superRef)
	require.NoError(t, err)
	subResID, err := graph.AddPlanar(store, "T0", "T1", "M1", 10, 10, geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 10, Y: 5}, subRef)
	require.NoError(t, err)

	require.NoError(t, fuseContains(store, graph, rgraph.NewNodeIDGen(), zerolog.Nop(), superRef, subRef))

	subRes, err := graph.Get(subResID)
	require.NoError(t, err)
	require.Equal(t, "S0", subRes.N1, "a planar super resistor must contribute its near node (N1) at a P1 coincidence")
}

// TestFuseContainsViaEndpointUsesFarNode is the matching via case: a via
// resistor's P1/P2 coincide (it has no real length), so the node it
// contributes at a coincidence is its far node, N2.
func TestFuseContainsViaEndpointUsesFarNode(t *testing.T) {
	store := wire.NewStore()
	superRef, err := store.Add("A", "via12", geom.NewRect2D(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 10, Y: 10}),
		geom.Point2D{X: 5, Y: 5}, geom.Point2D{X: 5, Y: 5}, nil, nil)
	require.NoError(t, err)
	subRef, err := store.Add("A", "via12", geom.NewRect2D(geom.Point2D{X: 2, Y: 2}, geom.Point2D{X: 8, Y: 8}),
		geom.Point2D{X: 5, Y: 5}, geom.Point2D{X: 5, Y: 5}, nil, nil)
	require.NoError(t, err)

	graph := rgraph.NewGraph()
	_, err = graph.AddVia(store, "S0", "S1", "via12", 100, geom.Point2D{X: 5, Y: 5}, geom.Point2D{X: 5, Y: 5}, superRef)
	require.NoError(t, err)
	subResID, err := graph.AddPlanar(store, "T0", "T1", "M1", 10, 10, geom.Point2D{X: 5, Y: 5}, geom.Point2D{X: 5, Y: 15}, subRef)
	require.NoError(t, err)

	require.NoError(t, fuseContains(store, graph, rgraph.NewNodeIDGen(), zerolog.Nop(), superRef, subRef))

	subRes, err := graph.Get(subResID)
	require.NoError(t, err)
	require.Equal(t, "S1", subRes.N1, "a via super resistor must contribute its far node (N2) at a P1 coincidence")
}
