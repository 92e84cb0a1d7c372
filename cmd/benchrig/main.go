// Command benchrig executes testplans against a target environment under a
// single-instance guarantee. The actual testcase execution engine is an
// external program; benchrig validates the configuration, takes the
// per-environment lock, drives the engine and summarizes the artifacts it
// wrote.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/torosent/benchrig/internal/collector"
	"github.com/torosent/benchrig/internal/config"
	"github.com/torosent/benchrig/internal/metrics"
	"github.com/torosent/benchrig/internal/output"
	"github.com/torosent/benchrig/internal/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadRun(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Resolve(); err != nil {
		return err
	}
	logger := output.NewLogger(cfg.Verbosity, os.Stderr)

	guard := session.NewGuard(cfg.EnvPath)
	if err := guard.Acquire(); err != nil {
		if errors.Is(err, session.ErrSessionLocked) {
			printLockBanner(os.Stderr, guard.Path())
		}
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := session.DefaultEngine()
	opts := session.RunOptions{
		EnvPath:        cfg.EnvPath,
		OutputDir:      cfg.OutputDir,
		TestcaseFilter: cfg.TestcaseFilter,
		Verbosity:      cfg.Verbosity,
	}
	for _, plan := range cfg.Testplans {
		logger.Infof("running testplan %s", plan)
		if err := engine.Run(ctx, plan, opts); err != nil {
			// The target's state is unknown after a failed or interrupted
			// run: the lock stays behind until an operator verifies it.
			return fmt.Errorf("testplan %s: %w (lock %s retained; verify the target before removing it)",
				plan, err, guard.Path())
		}
	}

	res, err := collector.Collect(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("collect results: %w (lock %s retained)", err, guard.Path())
	}
	for _, w := range res.Warnings {
		logger.Warnf("%s", w)
	}

	summaries := make([]metrics.Summary, 0, len(metrics.Metrics()))
	for _, m := range metrics.Metrics() {
		summaries = append(summaries, metrics.Summarize(res.Records, m))
	}
	if cfg.JSONOutput {
		if err := output.PrintJSONReport(os.Stdout, summaries); err != nil {
			return err
		}
	} else {
		output.PrintRunReport(os.Stdout, summaries, len(res.Records), len(res.Warnings))
	}
	logger.Infof("results written to %s", cfg.OutputDir)

	return guard.Release()
}

func printLockBanner(w io.Writer, lockPath string) {
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "  SESSION LOCKED — another run owns this environment")
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintf(w, "lock file: %s\n", lockPath)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "If a previous run crashed, the lock was left behind on")
	fmt.Fprintln(w, "purpose: the target may be in an inconsistent state.")
	fmt.Fprintln(w, "Verify the target environment, then remove the lock file")
	fmt.Fprintln(w, "and start the session again. The lock is never removed")
	fmt.Fprintln(w, "automatically.")
	fmt.Fprintln(w, "============================================================")
}
