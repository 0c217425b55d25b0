// Package phydb is the thin external-collaborator surface a physical
// database front end talks to: it owns the per-net wire.Store, the
// per-layer partition.Manager, and the rgraph.Graph, and exposes the two
// calls a driver program makes — generating the RC network and printing
// it — as DB.GenerateRCNetwork and DB.WriteRCNetwork.
//
// phydb does not parse LEF/DEF. The DEF-path traversal rules (stroke
// paths become planar segments with centerline p1->p2 and width from the
// path's width token; VIA tokens become one via segment per cut layer
// with p1 == p2 at the via origin and three rectangles — bottom metal,
// cut, top metal; RECT tokens become rectangles with centerline
// collapsed to the rectangle center) are a contract an upstream LEF/DEF
// lexer must satisfy when calling DB.AddWireSegment; this package does
// not implement a lexer, only the narrow WireInput shape the contract
// produces. LoadFixture reads a small JSON description of wire inputs
// for demonstration and testing, in lieu of a real LEF/DEF parser.
package phydb
