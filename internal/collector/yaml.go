package collector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/torosent/benchrig/internal/metrics"
)

// rawRecord mirrors one entry of a metrics.yml artifact: a mapping of metric
// fields plus a nested context mapping.
type rawRecord struct {
	IOPS *float64        `yaml:"iops"`
	BW   *float64        `yaml:"bw"`
	Lat  *float64        `yaml:"lat"`
	Ctx  metrics.Context `yaml:"ctx"`
}

func parseYAMLArtifact(path string) ([]metrics.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var raw []rawRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	records := make([]metrics.Record, 0, len(raw))
	for _, r := range raw {
		values := make(map[metrics.Metric]float64, 3)
		if r.IOPS != nil {
			values[metrics.MetricIOPS] = *r.IOPS
		}
		if r.BW != nil {
			values[metrics.MetricBandwidth] = *r.BW
		}
		if r.Lat != nil {
			values[metrics.MetricLatency] = *r.Lat
		}
		ctx := r.Ctx
		if ctx == nil {
			ctx = metrics.Context{}
		}
		records = append(records, metrics.Record{Values: values, Ctx: ctx})
	}

	if err := validateRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}
