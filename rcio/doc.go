// Package rcio serializes a resistor/capacitor graph to a text stream:
// planar and via resistors in their respective print forms, followed by
// every capacitor, one element per line.
package rcio
