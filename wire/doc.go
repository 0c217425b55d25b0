// Package wire holds the per-net ordered collection of WireSegments the RC
// extraction engine consumes: one rectangle per planar metal run or via
// footprint, tagged with its net, layer, insertion-order segment number,
// centerline endpoints, and the earlier same-net segments it continues
// (planar) or sits atop (via).
//
// Segments are arena-allocated inside Store and referenced everywhere
// else by the small value type SegmentRef (net name + insertion index)
// rather than by pointer, so back-references from the resistor graph
// never dangle and never need garbage collection.
package wire
