// Command benchplot turns the raw per-testcase metric artifacts of a
// finished run into grouped, labeled, sorted series and renders them.
//
// The result tree must not be written concurrently by a still-active session;
// benchplot performs a single sequential pass and does not detect writers.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/torosent/benchrig/internal/chart"
	"github.com/torosent/benchrig/internal/collector"
	"github.com/torosent/benchrig/internal/config"
	"github.com/torosent/benchrig/internal/label"
	"github.com/torosent/benchrig/internal/metrics"
	"github.com/torosent/benchrig/internal/output"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadPlot(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := output.NewLogger(cfg.Verbosity, os.Stderr)

	res, err := collector.Collect(cfg.OutputRoot)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		logger.Warnf("%s", w)
	}
	if len(res.Records) == 0 {
		return fmt.Errorf("no metric records found under %s", cfg.OutputRoot)
	}
	logger.Debugf("collected %d records", len(res.Records))

	var labelFn metrics.LabelFunc
	if cfg.LabelTemplate != "" {
		labelFn = func(ctx metrics.Context) (string, error) {
			return label.Render(cfg.LabelTemplate, ctx)
		}
	}
	series, err := metrics.Aggregate(res.Records, cfg.Metric, cfg.XKey, labelFn)
	if err != nil {
		return err
	}
	logger.Infof("aggregated %d records into %d series", len(res.Records), len(series))

	p, err := chart.Build(series, chart.Config{
		Kind:   cfg.Kind,
		Metric: cfg.Metric,
		XKey:   cfg.XKey,
		XScale: cfg.XScale,
		YScale: cfg.YScale,
		Title:  cfg.Title,
		XLabel: cfg.XLabel,
		YLabel: cfg.YLabel,
	})
	if err != nil {
		return err
	}

	if cfg.DumpAggregate {
		path := filepath.Join(cfg.OutputRoot, cfg.Name+".yml")
		if err := chart.WriteAggregate(path, series); err != nil {
			logger.Warnf("%v", err)
		} else {
			logger.Infof("aggregate written to %s", path)
		}
	}

	var saved []string
	if cfg.Save || cfg.Show {
		formats := cfg.Formats
		if len(formats) == 0 {
			formats = []chart.Format{chart.FormatPNG}
		}
		// Show without save renders to a scratch directory instead of
		// leaving artifacts in the result tree.
		dir := cfg.OutputRoot
		if !cfg.Save {
			dir, err = os.MkdirTemp("", "benchplot")
			if err != nil {
				return err
			}
		}
		var saveErr error
		saved, saveErr = chart.SaveAll(p, dir, cfg.Name, formats)
		for _, path := range saved {
			logger.Infof("saved %s", path)
		}
		if saveErr != nil {
			// Per-artifact failure; formats that did save still count.
			if len(saved) == 0 {
				return saveErr
			}
			logger.Warnf("%v", saveErr)
		}
	}

	if cfg.Show && len(saved) > 0 {
		if err := chart.Show(saved[0]); err != nil {
			logger.Warnf("%v", err)
		}
	}

	return nil
}
