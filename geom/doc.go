// Package geom defines the axis-aligned geometric primitives the RC
// extraction engine is built on: 2-D points, axis-aligned rectangles, and
// the containment/overlap predicates the resistor and capacitance network
// builders run on every wire rectangle.
//
// Point2D is an alias of github.com/golang/geo's r2.Point and Rect2D is a
// thin struct wrapping r2.Rect, rather than hand-rolled coordinate math: r2.Rect already gives
// exact, well-tested containment and interval-overlap semantics, and this
// package only adds the inclusive-edge containment rule and axis-overlap
// helpers the extraction passes need on top of it.
package geom
