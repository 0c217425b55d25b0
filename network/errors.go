package network

import "errors"

// ErrEmptySegment indicates an attempt to build a resistor for a net that
// the store reports but which carries no segments; this is treated as an
// internal consistency fault rather than a soft warning, since the store
// only ever returns net names it holds segments for.
var ErrEmptySegment = errors.New("network: net reports no segments")
