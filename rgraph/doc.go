// Package rgraph defines the resistor/capacitor graph the RC extraction
// engine builds: Resistor (planar or via), Capacitor, and the Graph arena
// that owns both lists plus the split and re-parent operations.
//
// Resistors and capacitors are identified by their index into Graph's
// slices (an arena index, never invalidated by later appends) rather than
// by pointer, so splitting a resistor never has to worry about
// invalidating an earlier reference — it only ever appends.
//
// Node IDs are plain strings of the form "<net>{<k>}" (NodeIDGen), and
// node merging is done by writing the same ID into two resistor
// endpoints, never by a global rename pass, because every merge in this
// algorithm involves a resistor that has exactly one reference to the
// node being fused.
package rgraph
