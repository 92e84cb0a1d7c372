package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/torosent/benchrig/internal/chart"
	"github.com/torosent/benchrig/internal/metrics"
)

// PlotConfig describes one reporting pass: where the result tree lives and
// how the aggregated series are rendered.
type PlotConfig struct {
	Kind       chart.Kind
	OutputRoot string
	Name       string

	Metric metrics.Metric
	XKey   metrics.XKey
	XScale chart.Scale
	YScale chart.Scale

	Title  string
	XLabel string
	YLabel string

	Show          bool
	Save          bool
	Formats       []chart.Format
	DumpAggregate bool
	LabelTemplate string
	Verbosity     int
}

// ValidationError aggregates everything wrong with a configuration.
type ValidationError struct {
	issues []string
}

func (e ValidationError) Error() string {
	if len(e.issues) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.issues, "; "))
}

func (e ValidationError) Issues() []string {
	return append([]string(nil), e.issues...)
}

// Validate checks enum values and the output root, and fills derived
// defaults (plot name, save formats).
func (c *PlotConfig) Validate() error {
	var issues []string

	if strings.TrimSpace(c.OutputRoot) == "" {
		issues = append(issues, "output-root is required")
	} else if _, err := os.Stat(c.OutputRoot); err != nil {
		issues = append(issues, fmt.Sprintf("output-root %q does not exist", c.OutputRoot))
	}

	if c.Metric == "" {
		issues = append(issues, "metric is required")
	}
	if c.XKey == "" {
		issues = append(issues, "x-key is required")
	}

	if c.Save && len(c.Formats) == 0 {
		c.Formats = []chart.Format{chart.FormatPNG}
	}
	if !c.Save && len(c.Formats) > 0 {
		issues = append(issues, "save-format requires save")
	}

	if c.Name == "" && c.Metric != "" && c.XKey != "" {
		c.Name = fmt.Sprintf("%s_vs_%s", c.Metric, c.XKey)
	}

	if len(issues) > 0 {
		return ValidationError{issues: issues}
	}
	return nil
}
