package metrics

import (
	"fmt"
	"strings"
)

// Metric identifies one of the numeric fields recorded per sample.
type Metric string

const (
	MetricIOPS      Metric = "iops" // throughput, operations per second
	MetricBandwidth Metric = "bw"   // bandwidth, KiB/s
	MetricLatency   Metric = "lat"  // latency, microseconds
)

// Metrics lists the supported metrics in display order.
func Metrics() []Metric {
	return []Metric{MetricIOPS, MetricBandwidth, MetricLatency}
}

// ParseMetric validates a metric name from the CLI.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MetricIOPS, MetricBandwidth, MetricLatency:
		return m, nil
	}
	return "", fmt.Errorf("metric must be one of iops, bw, lat, got %q", s)
}

// XKey identifies a context key usable as the plot's x axis. Only keys whose
// values are integers qualify.
type XKey string

const (
	XKeyIODepth XKey = "iodepth"
	XKeyNumJobs XKey = "numjobs"
)

// ParseXKey validates an x-axis key name from the CLI.
func ParseXKey(s string) (XKey, error) {
	k := XKey(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case XKeyIODepth, XKeyNumJobs:
		return k, nil
	}
	return "", fmt.Errorf("x-key must be one of iodepth, numjobs, got %q", s)
}

// Context keys present in every sample but excluded from grouping: they vary
// per run, not per parameter combination.
const (
	ContextKeyFname     = "fname"
	ContextKeyTimestamp = "timestamp"
)

// Context is the per-sample parameter dictionary.
type Context map[string]Value

// Validate checks the mandatory keys the execution engine always writes.
func (c Context) Validate() error {
	for _, key := range []string{ContextKeyFname, ContextKeyTimestamp} {
		if _, ok := c[key]; !ok {
			return fmt.Errorf("context is missing mandatory key %q", key)
		}
	}
	return nil
}

// Reduced returns a copy of the context without the x-axis key and the
// volatile keys. This is the grouping identity for aggregation.
func (c Context) Reduced(xKey XKey) Context {
	out := make(Context, len(c))
	for k, v := range c {
		if k == string(xKey) || k == ContextKeyFname || k == ContextKeyTimestamp {
			continue
		}
		out[k] = v
	}
	return out
}

// Equal reports field-for-field equality.
func (c Context) Equal(other Context) bool {
	if len(c) != len(other) {
		return false
	}
	for k, v := range c {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Record is one benchmark sample. Records are produced by the external
// execution engine and are read-only once collected.
type Record struct {
	Values map[Metric]float64
	Ctx    Context
}
