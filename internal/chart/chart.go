// Package chart renders aggregated series to image files.
//
// Every function builds on an explicitly owned *plot.Plot handle; there is no
// package-level figure state. Rendering never mutates the series data: unit
// conversion for display happens in the axis tick formatter only.
package chart

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/torosent/benchrig/internal/metrics"
)

// Kind selects the drawing style for every series.
type Kind string

const (
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
)

// ParseKind validates a plot kind name from the CLI.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindLine, KindScatter:
		return k, nil
	}
	return "", fmt.Errorf("kind must be line or scatter, got %q", s)
}

// Format is an image output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat validates a save format name from the CLI.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatPNG, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("save format must be png or pdf, got %q", s)
}

// Config controls how one plot is rendered.
type Config struct {
	Kind   Kind
	Metric metrics.Metric
	XKey   metrics.XKey
	XScale Scale
	YScale Scale

	// Title, XLabel and YLabel override the per-metric/per-key defaults
	// when non-empty.
	Title  string
	XLabel string
	YLabel string
}

// IOFailure reports a failed artifact write. It is fatal for that artifact
// only; callers keep writing the remaining requested artifacts.
type IOFailure struct {
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error { return e.Err }

// markerPalette is the fixed ordered glyph cycle. When the series count
// exceeds the palette length the markers repeat.
var markerPalette = []draw.GlyphDrawer{
	draw.RingGlyph{},
	draw.SquareGlyph{},
	draw.TriangleGlyph{},
	draw.CrossGlyph{},
	draw.PlusGlyph{},
	draw.CircleGlyph{},
	draw.PyramidGlyph{},
	draw.BoxGlyph{},
}

func marker(i int) draw.GlyphDrawer {
	return markerPalette[i%len(markerPalette)]
}

type unitSpec struct {
	divisor float64
	unit    string
}

// Metric values are stored raw (ops/s, KiB/s, µs) and rescaled for display
// through the tick formatter.
var unitByMetric = map[metrics.Metric]unitSpec{
	metrics.MetricIOPS:      {divisor: 1000, unit: "kIOPS"},
	metrics.MetricBandwidth: {divisor: 1024, unit: "MiB/s"},
	metrics.MetricLatency:   {divisor: 1000, unit: "ms"},
}

var metricTitle = map[metrics.Metric]string{
	metrics.MetricIOPS:      "Throughput",
	metrics.MetricBandwidth: "Bandwidth",
	metrics.MetricLatency:   "Latency",
}

var xKeyLabel = map[metrics.XKey]string{
	metrics.XKeyIODepth: "Queue depth",
	metrics.XKeyNumJobs: "Parallel jobs",
}

// Build constructs a plot from the aggregated series. Series are drawn in
// fingerprint order so marker and color assignment is reproducible across
// runs over the same data.
func Build(series map[string]*metrics.Series, cfg Config) (*plot.Plot, error) {
	unit, ok := unitByMetric[cfg.Metric]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", cfg.Metric)
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("%s vs %s", metricTitle[cfg.Metric], strings.ToLower(xKeyLabel[cfg.XKey]))
	}
	p.X.Label.Text = cfg.XLabel
	if p.X.Label.Text == "" {
		p.X.Label.Text = xKeyLabel[cfg.XKey]
	}
	p.Y.Label.Text = cfg.YLabel
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = fmt.Sprintf("%s [%s]", metricTitle[cfg.Metric], unit.unit)
	}

	if err := applyScale(&p.X, cfg.XScale, 1); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if err := applyScale(&p.Y, cfg.YScale, unit.divisor); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	p.Legend.Top = true

	for i, fp := range metrics.SortedFingerprints(series) {
		s := series[fp]
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = float64(pt.X)
			xys[j].Y = pt.Y
		}

		switch cfg.Kind {
		case KindScatter:
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", fp, err)
			}
			sc.GlyphStyle.Shape = marker(i)
			sc.GlyphStyle.Color = plotutil.Color(i)
			p.Add(sc)
			p.Legend.Add(s.Label, sc)
		default:
			line, pts, err := plotter.NewLinePoints(xys)
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", fp, err)
			}
			line.Color = plotutil.Color(i)
			pts.GlyphStyle.Shape = marker(i)
			pts.GlyphStyle.Color = plotutil.Color(i)
			p.Add(line, pts)
			p.Legend.Add(s.Label, line, pts)
		}
	}

	return p, nil
}

// SaveAll writes <name>.<format> under dir for each requested format. A
// failed format does not stop the remaining ones; the returned error joins
// the per-artifact failures.
func SaveAll(p *plot.Plot, dir, name string, formats []Format) ([]string, error) {
	var saved []string
	var errs []error
	for _, f := range formats {
		path := filepath.Join(dir, name+"."+string(f))
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			errs = append(errs, &IOFailure{Path: path, Err: err})
			continue
		}
		saved = append(saved, path)
	}
	return saved, errors.Join(errs...)
}
