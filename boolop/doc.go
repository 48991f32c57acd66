// Package boolop intersects and subtracts a circle-segment polyline against
// a circle-segment polygon-with-holes (§4.G). Conceptually this inserts both
// the polyline's curves and the polygon set's boundary curves into a common
// arrangement, classifies every resulting sub-curve by whether it belongs to
// the polyline or the boundary, and stitches the polyline sub-curves whose
// midpoint lies inside the polygon set (or on its boundary, when keepOverlap
// is set) back into maximal output polylines.
//
// The arrangement step here only needs to locate where the polyline crosses
// the boundary, not a full planar subdivision, so it is done directly by
// pairwise curve intersection rather than by building a DCEL as package
// drawing does.
package boolop
