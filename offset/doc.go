// Package offset implements the approximate Minkowski-offset engine of
// §4.C: offsetting a rational polygon or polyline by a disk of given
// radius, producing a rational circle-segment polygon within epsilon of
// the true (in general irrational) offset.
//
// The vertex/edge expansion strategy is grounded on the ClipperOffset
// technique (CWBudde/Go-Clipper2's offsetGroup expansion, reference
// material only: each edge produces a parallel offset segment, each
// convex vertex produces a round join arc, reflex vertices are absorbed).
// That reference implementation works with float64 tangent points
// throughout. This engine computes its tangent points in float64 as well
// and converts each to the exact rational value of that float64 (ratify);
// a join arc's endpoints therefore lie within float64 rounding of its
// circle rather than exactly on it, and no auxiliary mid point is inserted
// between a rail segment and an arc. The expansion itself is written from
// scratch and emits package geom/curve's rational types: every
// polygon-offset library in the ecosystem (clipper2 included) produces
// float output only.
package offset
