// Package pattern implements the four pattern variants of §4.D:
// SinglePoint, Matching, Bank, and Island. A pattern owns an ordered list
// of same-category points and caches a derived contour and cover radius;
// it is immutable once constructed and is shared (by plain Go pointer,
// never mutated) across a partition's history.
package pattern
