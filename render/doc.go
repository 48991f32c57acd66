// Package render bridges the circle-segment geometry domain (packages
// curve, offset, drawing) to a vector output description: Painting, an
// ordered list of fill/stroke PaintOps, and ToPathData/ToPath, which lower
// a CSPolygon/CSPolyline into seehuhn.de/go/geom's path.Data/path.Path
// representation for any caller that already speaks that vector-path
// format. Rasterizing or emitting those paths to a concrete image or
// document format is an external collaborator's job, not this package's.
//
// A circular arc has no direct path.Data command, so arcs are lowered to
// cubic Bezier segments using the standard kappa approximation before
// handing a shape to path.Data/path.Path.
package render
