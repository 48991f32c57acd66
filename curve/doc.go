// Package curve implements the circle-segment curve library of §4.B: curves
// that are either a rational line segment or a circular arc with a rational
// supporting circle and algebraic (geom.OneRoot) endpoints, and the
// polylines/polygons built from them.
package curve
