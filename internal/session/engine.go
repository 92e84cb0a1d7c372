package session

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// defaultEngineBinary is looked up on PATH unless BENCHRIG_ENGINE overrides
// it.
const defaultEngineBinary = "benchrig-engine"

// RunOptions carries the per-testplan invocation parameters.
type RunOptions struct {
	EnvPath        string
	OutputDir      string
	TestcaseFilter string
	Verbosity      int
}

// Engine drives one testplan against the target environment. The real
// execution engine is an external program; this package reaches it only
// through its command line and, later, its output artifacts.
type Engine interface {
	Run(ctx context.Context, testplan string, opts RunOptions) error
}

// ExecEngine shells out to the engine binary.
type ExecEngine struct {
	Binary string
}

// DefaultEngine resolves the engine binary from the environment.
func DefaultEngine() *ExecEngine {
	binary := os.Getenv("BENCHRIG_ENGINE")
	if binary == "" {
		binary = defaultEngineBinary
	}
	return &ExecEngine{Binary: binary}
}

// Run executes one testplan. The engine inherits stdout/stderr so its own
// progress output reaches the operator directly.
func (e *ExecEngine) Run(ctx context.Context, testplan string, opts RunOptions) error {
	cmd := exec.CommandContext(ctx, e.Binary, engineArgs(testplan, opts)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("execution engine: %w", err)
	}
	return nil
}

func engineArgs(testplan string, opts RunOptions) []string {
	args := []string{
		"--env", opts.EnvPath,
		"--output", opts.OutputDir,
	}
	if opts.TestcaseFilter != "" {
		args = append(args, "--testcase", opts.TestcaseFilter)
	}
	for i := 0; i < opts.Verbosity; i++ {
		args = append(args, "-v")
	}
	return append(args, testplan)
}
