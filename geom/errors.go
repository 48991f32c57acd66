package geom

import "fmt"

// InvariantError signals a GeometryDegenerate condition per spec.md §7: a
// zero-radius circle, a polyline with fewer than two vertices, an unhandled
// tangency. These indicate malformed input or a programming bug and are
// always fatal to the current operation, so callers panic with them rather
// than threading them through error returns.
type InvariantError struct {
	Kind string // e.g. "GeometryDegenerate"
	Msg  string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("geom: %s: %s", e.Kind, e.Msg)
}

// Degenerate panics with a GeometryDegenerate InvariantError. Call this from
// constructive routines whose preconditions were violated by the caller.
func Degenerate(format string, args ...any) {
	panic(InvariantError{Kind: "GeometryDegenerate", Msg: fmt.Sprintf(format, args...)})
}
