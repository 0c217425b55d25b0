package rgraph

import (
	"strconv"
	"sync"
)

// NodeIDGen synthesizes electrical node IDs of the form "<net>{<k>}",
// where k is a per-net monotonic counter starting at 0. The counter is
// process-local and not persisted: two runs over the same input in the
// same net/segment/construction order produce identical IDs.
type NodeIDGen struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewNodeIDGen returns a NodeIDGen with every net's counter starting at
// zero.
//
// Complexity: O(1).
func NewNodeIDGen() *NodeIDGen {
	return &NodeIDGen{counts: make(map[string]int)}
}

// Next fetches and increments net's counter, returning the freshly
// synthesized node ID.
//
// Complexity: O(1).
func (g *NodeIDGen) Next(net string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := g.counts[net]
	g.counts[net] = k + 1
	return formatNodeID(net, k)
}

// Count returns the number of node IDs synthesized so far for net.
//
// Complexity: O(1).
func (g *NodeIDGen) Count(net string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.counts[net]
}

func formatNodeID(net string, k int) string {
	return net + "{" + strconv.Itoa(k) + "}"
}
