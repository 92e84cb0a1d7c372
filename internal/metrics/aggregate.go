package metrics

import (
	"fmt"
	"sort"
)

// Point is one aggregated sample: x from the chosen context key, y from the
// chosen metric.
type Point struct {
	X int64
	Y float64
}

// Series groups the samples sharing one reduced context.
type Series struct {
	Fingerprint string
	Points      []Point
	Label       string
	Ctx         Context // original context minus x key and volatile keys
}

// LabelFunc renders a series label from the first record's context. A nil
// LabelFunc leaves the fingerprint as the label.
type LabelFunc func(Context) (string, error)

// Aggregate groups records into series keyed by context fingerprint and sorts
// each series' points by x. Identical inputs always produce identical output:
// grouping depends only on the key-sorted reduced context, and the point sort
// is stable so equal x values keep their original record order.
//
// The pass is all-or-nothing. A record missing the metric or carrying an
// x value that does not parse as an integer fails the whole aggregation.
func Aggregate(records []Record, metric Metric, xKey XKey, labelFn LabelFunc) (map[string]*Series, error) {
	series := make(map[string]*Series)

	for i, rec := range records {
		y, ok := rec.Values[metric]
		if !ok {
			return nil, &MissingMetricError{Index: i, Metric: metric}
		}

		xv, ok := rec.Ctx[string(xKey)]
		if !ok {
			return nil, &MalformedContextError{Index: i, Key: string(xKey)}
		}
		x, err := xv.AsInt()
		if err != nil {
			return nil, &MalformedContextError{Index: i, Key: string(xKey), Cause: err}
		}

		reduced := rec.Ctx.Reduced(xKey)
		fp := Fingerprint(reduced)

		s, ok := series[fp]
		if !ok {
			s = &Series{Fingerprint: fp, Label: fp, Ctx: reduced}
			if labelFn != nil {
				label, err := labelFn(reduced)
				if err != nil {
					return nil, fmt.Errorf("label for series %s: %w", fp, err)
				}
				s.Label = label
			}
			series[fp] = s
		}
		s.Points = append(s.Points, Point{X: x, Y: y})
	}

	for _, s := range series {
		points := s.Points
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].X < points[j].X
		})
	}

	return series, nil
}

// SortedFingerprints returns the series keys in lexical order, the iteration
// order used everywhere a deterministic pass over the map is needed.
func SortedFingerprints(series map[string]*Series) []string {
	fps := make([]string, 0, len(series))
	for fp := range series {
		fps = append(fps, fp)
	}
	sort.Strings(fps)
	return fps
}
