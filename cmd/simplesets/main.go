// Command simplesets drives the partition and drawing engines over one or
// more project files, writing a plain-text paint-op summary of each
// project's selected drawing next to the project file. Rasterizing or
// otherwise emitting those ops to a concrete image or document format is
// left to an external collaborator, per the package's scope.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tue-alga/cartocrow-sub002/config"
	"github.com/tue-alga/cartocrow-sub002/drawing"
	"github.com/tue-alga/cartocrow-sub002/geom"
	"github.com/tue-alga/cartocrow-sub002/input"
	"github.com/tue-alga/cartocrow-sub002/partition"
	"github.com/tue-alga/cartocrow-sub002/pattern"
	"github.com/tue-alga/cartocrow-sub002/render"
)

// maxConcurrentProjects bounds the fan-out over the command line's project
// files; unlike the core engines (single-threaded and synchronous, §5),
// rendering independent projects in parallel has no shared state to guard.
const maxConcurrentProjects = 4

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() == 0 {
		logger.Error("usage: simplesets <project.json>...")
		os.Exit(2)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(maxConcurrentProjects)
	for _, path := range flag.Args() {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return runProject(logger, path)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func runProject(logger *slog.Logger, path string) error {
	logger = logger.With("project", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening project %s: %w", path, err)
	}
	defer f.Close()

	proj, err := config.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding project %s: %w", path, err)
	}

	pointsPath := proj.Points
	if !filepath.IsAbs(pointsPath) {
		pointsPath = filepath.Join(filepath.Dir(path), pointsPath)
	}
	pf, err := os.Open(pointsPath)
	if err != nil {
		return fmt.Errorf("opening points file %s: %w", pointsPath, err)
	}
	defer pf.Close()

	points, err := input.ReadPoints(pf)
	if err != nil {
		return fmt.Errorf("reading points %s: %w", pointsPath, err)
	}

	gs := proj.GeneralPatternSettings()
	ps := proj.PartitionEngineSettings()
	cds := proj.ComputeDrawingEngineSettings()
	ds := proj.DrawingColors()

	stats := &partition.Stats{}
	history := partition.Run(points, gs, ps, proj.Cover*gs.DilationRadius()+1, stats)
	selected := history.AtCover(proj.Cover, gs.DilationRadius())
	logger.Info("partitioned", "patterns", len(selected),
		"stale_drops", stats.StaleDrops,
		"intersection_drops", stats.IntersectionDrops,
		"admissibility_drops", stats.AdmissibilityDrops)

	if violated, a, b := tooClose(points, gs.PointRadius); violated {
		logger.Warn("no drawing: points of different categories closer than 2*pointSize", "a", a, "b", b)
		return nil
	}

	dpd := drawing.New(selected, gs, cds)
	painting := dpd.Paint(ds)

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".ops.txt"
	if err := writeOpsSummary(painting, outPath); err != nil {
		return fmt.Errorf("writing ops summary for %s: %w", path, err)
	}
	logger.Info("wrote ops summary", "path", outPath, "ops", len(painting.Ops))
	return nil
}

// tooClose implements the §7 NoDrawing check: any two points of different
// categories within 2*pointSize.
func tooClose(points []pattern.CategoricalPoint, pointRadius float64) (violated bool, a, b int) {
	limit := 2 * pointRadius
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Category == points[j].Category {
				continue
			}
			pi := points[i].Position.Inexact()
			pj := points[j].Position.Inexact()
			if geom.Distance(pi, pj) < limit {
				return true, i, j
			}
		}
	}
	return false, 0, 0
}

// writeOpsSummary writes one line per paint operation: its kind, color,
// stroke width (for a stroke), and curve count. It is a smoke-test view of
// the painting, not a rendering of it — turning these ops into pixels or a
// vector document is left to an external collaborator.
func writeOpsSummary(p *render.Painting, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, op := range p.Ops {
		switch op.Kind {
		case render.OpFill:
			if _, err := fmt.Fprintf(f, "fill color=%s curves=%d\n",
				hexColor(op.Color), len(op.Polygon.Curves)); err != nil {
				return err
			}
		case render.OpStroke:
			if _, err := fmt.Fprintf(f, "stroke color=%s width=%g curves=%d\n",
				hexColor(op.Color), op.Width, len(op.Polyline.Curves)); err != nil {
				return err
			}
		}
	}
	return nil
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
