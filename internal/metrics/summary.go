package metrics

import (
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Summary is the distribution of one metric across a record set.
type Summary struct {
	Metric Metric  `json:"metric"`
	Count  int64   `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// Summarize computes a Summary over every record carrying the metric.
// Records without the metric are simply not counted; unlike aggregation,
// a summary is informational and tolerates sparse data.
func Summarize(records []Record, metric Metric) Summary {
	// Track values up to 2^40 with 3 significant figures; metric values are
	// rounded to integers for the histogram, exact min/max/mean are kept
	// alongside.
	h := hdrhistogram.New(1, 1<<40, 3)

	var (
		count int64
		sum   float64
		min   float64
		max   float64
	)

	for _, rec := range records {
		v, ok := rec.Values[metric]
		if !ok {
			continue
		}
		count++
		sum += v
		if count == 1 || v < min {
			min = v
		}
		if v > max {
			max = v
		}

		iv := int64(math.Round(v))
		if iv < h.LowestTrackableValue() {
			iv = h.LowestTrackableValue()
		}
		if iv > h.HighestTrackableValue() {
			iv = h.HighestTrackableValue()
		}
		_ = h.RecordValue(iv)
	}

	s := Summary{Metric: metric, Count: count, Min: min, Max: max}
	if count > 0 {
		s.Mean = sum / float64(count)
		s.P50 = float64(h.ValueAtQuantile(50))
		s.P90 = float64(h.ValueAtQuantile(90))
		s.P99 = float64(h.ValueAtQuantile(99))
	}
	return s
}
