package chart

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/torosent/benchrig/internal/metrics"
)

// seriesDump is the serialized form of one aggregated series.
type seriesDump struct {
	XVals []int64         `yaml:"xvals"`
	YVals []float64       `yaml:"yvals"`
	Ctx   metrics.Context `yaml:"ctx"`
	Label string          `yaml:"label"`
}

// WriteAggregate serializes the fingerprint-to-series mapping to path.
func WriteAggregate(path string, series map[string]*metrics.Series) error {
	dump := make(map[string]seriesDump, len(series))
	for fp, s := range series {
		d := seriesDump{
			XVals: make([]int64, len(s.Points)),
			YVals: make([]float64, len(s.Points)),
			Ctx:   s.Ctx,
			Label: s.Label,
		}
		for i, pt := range s.Points {
			d.XVals[i] = pt.X
			d.YVals[i] = pt.Y
		}
		dump[fp] = d
	}

	data, err := yaml.Marshal(dump)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &IOFailure{Path: path, Err: err}
	}
	return nil
}
