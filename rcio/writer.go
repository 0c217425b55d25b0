package rcio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/phydb-rc/rcnet/rgraph"
)

// Write serializes graph's resistors and capacitors to w: every resistor
// first (in arena construction order), planar resistors printed as
// `Resistor<node1='...', node2='...', length=..., width=..., layer=...,
// segment-id='<net>:<segnum>'>` and via resistors as
// `VerticalResistor<lower-node='...', upper-node='...',
// cross-sectional-area=..., layer=..., segment-id='<net>:<segnum>'>`,
// followed by every capacitor as `Capacitor<node1='...', node2='...',
// overlap-length=..., distance=...>`. Each element is terminated by a
// newline; numeric fields use Go's default (shortest round-trip) decimal
// form.
//
// Complexity: O(R + C) in the number of resistors and capacitors.
func Write(w io.Writer, graph *rgraph.Graph) error {
	bw := bufio.NewWriter(w)

	for _, r := range graph.Resistors() {
		if _, err := writeResistor(bw, r); err != nil {
			return err
		}
	}
	for _, c := range graph.Capacitors() {
		if _, err := writeCapacitor(bw, c); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeResistor(w io.Writer, r rgraph.Resistor) (int, error) {
	segmentID := fmt.Sprintf("%s:%d", r.Owner.Net, r.Owner.Index)
	if r.IsVia() {
		return fmt.Fprintf(w, "VerticalResistor<lower-node='%s', upper-node='%s', cross-sectional-area=%v, layer=%s, segment-id='%s'>\n",
			r.N1, r.N2, r.Area, r.Material, segmentID)
	}
	return fmt.Fprintf(w, "Resistor<node1='%s', node2='%s', length=%v, width=%v, layer=%s, segment-id='%s'>\n",
		r.N1, r.N2, r.Length, r.Width, r.Material, segmentID)
}

func writeCapacitor(w io.Writer, c rgraph.Capacitor) (int, error) {
	return fmt.Fprintf(w, "Capacitor<node1='%s', node2='%s', overlap-length=%v, distance=%v>\n",
		c.N1, c.N2, c.OverlapLength, c.Distance)
}
