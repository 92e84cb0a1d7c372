package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/torosent/benchrig/internal/config"
	"github.com/torosent/benchrig/internal/session"
)

func TestRunValidationFailures(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, "a.plan")
	if err := os.WriteFile(plan, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing environment", args: []string{plan}},
		{name: "missing testplan", args: []string{"--env", plan, filepath.Join(dir, "nope.plan")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			var cfgErr *config.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	if err := run(nil); err != nil {
		t.Fatalf("bare invocation should print help and succeed, got %v", err)
	}
}

func TestRunLockedEnvironment(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, "a.plan")
	env := filepath.Join(dir, "locked-main-test.env.yml")
	for _, p := range []string{plan, env} {
		if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	// Simulate a concurrent (or crashed) session holding the lock.
	holder := session.NewGuard(env)
	if err := holder.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer func() { _ = holder.Release() }()

	out := filepath.Join(dir, "out")
	err := run([]string{"--env", env, "--output", out, plan})
	if !errors.Is(err, session.ErrSessionLocked) {
		t.Fatalf("expected ErrSessionLocked, got %v", err)
	}
	// The held lock must survive the failed attempt.
	if _, statErr := os.Stat(holder.Path()); statErr != nil {
		t.Fatalf("lock file removed by contending run: %v", statErr)
	}
}

func TestPrintLockBanner(t *testing.T) {
	var buf bytes.Buffer
	printLockBanner(&buf, "/tmp/lab3_env_yml_lock")
	out := buf.String()
	for _, want := range []string{"SESSION LOCKED", "/tmp/lab3_env_yml_lock", "never removed"} {
		if !strings.Contains(out, want) {
			t.Errorf("banner missing %q:\n%s", want, out)
		}
	}
}
