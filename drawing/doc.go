// Package drawing implements §4.F: it dilates every pattern of a selected
// Partition into a polygonal boundary, arranges all those boundaries into
// a shared planar subdivision, tags every face with the set of patterns
// whose dilation contains it, groups same-pair-of-origin faces into
// maximal adjacency components, and produces a Painting ready for package
// render.
//
// The reference implementation builds a CGAL Arrangement_with_history_2.
// This package instead builds its own half-edge structure directly from
// the dilated boundaries' x-monotone curves (arcs chorded the same way
// package partition's area arithmetic already does), using the standard
// angular-sort face-tracing technique: at each vertex, a half-edge's
// "next" around its face is the outgoing half-edge immediately clockwise
// from its twin.
package drawing
