// Package network implements the resistor and capacitance network
// builders: the four-pass algorithm that turns a net's ordered
// WireSegments into a connected resistor sub-graph, and the
// spatial-index-driven capacitance pass that couples same-layer segments
// of distinct nets.
//
// Both builders are one-shot, deterministic batch operations over an
// already-fully-ingested wire.Store: they iterate nets in sorted order
// and segments in insertion order, so two runs over the same input
// produce byte-identical resistor and capacitor lists.
package network
