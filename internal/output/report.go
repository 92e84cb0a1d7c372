package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/torosent/benchrig/internal/metrics"
)

// PrintRunReport outputs a human-readable summary of the metrics a session
// left behind.
func PrintRunReport(w io.Writer, summaries []metrics.Summary, records, warnings int) {
	fmt.Fprintln(w, "\n--- Session Results ---")
	fmt.Fprintf(w, "Records collected:  %d\n", records)
	if warnings > 0 {
		fmt.Fprintf(w, "Artifact warnings:  %d\n", warnings)
	}
	for _, s := range summaries {
		if s.Count == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s (%d samples):\n", s.Metric, s.Count)
		fmt.Fprintf(w, "  Min:             %.2f\n", s.Min)
		fmt.Fprintf(w, "  Max:             %.2f\n", s.Max)
		fmt.Fprintf(w, "  Mean:            %.2f\n", s.Mean)
		fmt.Fprintf(w, "  P50:             %.2f\n", s.P50)
		fmt.Fprintf(w, "  P90:             %.2f\n", s.P90)
		fmt.Fprintf(w, "  P99:             %.2f\n", s.P99)
	}
}

// PrintJSONReport outputs the summaries as indented JSON.
func PrintJSONReport(w io.Writer, summaries []metrics.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaries)
}
