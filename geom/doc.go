// Package geom provides the three numeric domains the rest of the module
// builds on: exact rational arithmetic for stored geometry, double-precision
// floats for predicates and rendering, and one-root algebraic numbers for
// the arc endpoints produced when a line meets a circle.
//
// No type in this package is safe for use as a map key by pointer identity;
// Point, Vec2 and OneRoot are plain values and should be compared with Eq
// methods, never ==.
package geom
