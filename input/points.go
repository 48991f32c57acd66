// Package input parses the points-file format described in spec.md §6:
// plain text, one point per line, an integer category followed by
// floating-point x and y, with the y-axis inverted on load to match a
// screen coordinate system.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tue-alga/cartocrow-sub002/geom"
	"github.com/tue-alga/cartocrow-sub002/pattern"
)

// ErrMalformed is returned (wrapped with the offending line number) when a
// points line does not have exactly three whitespace-separated tokens, or
// when a token fails to parse as a number (§7 InputMalformed).
var ErrMalformed = errors.New("input: malformed points line")

// ReadPoints parses a categorical-points file from r. Blank lines are
// skipped; every other line must be "category x y".
func ReadPoints(r io.Reader) ([]pattern.CategoricalPoint, error) {
	flip := geom.FlipY()

	var points []pattern.CategoricalPoint
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w at line %d: got %d fields, want 3", ErrMalformed, lineNo, len(fields))
		}
		category, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: category %q: %v", ErrMalformed, lineNo, fields[0], err)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: x %q: %v", ErrMalformed, lineNo, fields[1], err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: y %q: %v", ErrMalformed, lineNo, fields[2], err)
		}

		v := flip.Apply(geom.Vec2{X: x, Y: y})
		points = append(points, pattern.CategoricalPoint{
			Category: category,
			Position: geom.PointFromFloat(v.X, v.Y),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: reading points: %w", err)
	}
	return points, nil
}
