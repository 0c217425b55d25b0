// Package partition implements the uniform fixed-grid bucket index spec
// section 4.3 describes: a coarse per-layer spatial index used only by the
// capacitance network builder to find other-net segments near a query
// rectangle without an O(N^2) sweep over every segment pair.
//
// A Manager owns one Index per metal layer. Segments are inserted into
// every bucket their bounding box overlaps (so a segment spanning k cells
// appears in k buckets); a Neighbors query walks the inclusive bucket
// range around the query rectangle's own buckets, expanded by a
// configurable neighborhood-bin radius, and returns the deduplicated
// union filtered to segments of a different net.
package partition
