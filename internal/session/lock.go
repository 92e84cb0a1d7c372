// Package session guards a benchmarking run with a per-environment lock file.
//
// The lock is a plain file created with an atomic exclusive create; its
// existence alone is the mutual-exclusion token. This is deliberate: an
// advisory lock held by a file descriptor disappears when the holding process
// dies, but a crashed run leaves the target in an unknown state, and the
// surviving lock file is the signal that forces an operator to verify it
// before the environment is used again. The guard therefore never clears a
// stale lock itself.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrSessionLocked is returned when the environment's lock file already
// exists. The existing lock is left untouched and there is no queueing or
// retry: a concurrent run against the same target would corrupt its state.
var ErrSessionLocked = errors.New("another session holds the environment lock")

// LockPath derives the lock file location from the environment definition's
// filename, so two runs collide exactly when they target the same
// environment.
func LockPath(envPath string) string {
	base := strings.ReplaceAll(filepath.Base(envPath), ".", "_")
	return filepath.Join(os.TempDir(), base+"_lock")
}

// Guard owns the lock lifecycle for one session.
type Guard struct {
	path string
	held bool
}

// NewGuard prepares a guard for the given environment definition. No lock is
// taken yet.
func NewGuard(envPath string) *Guard {
	return &Guard{path: LockPath(envPath)}
}

// Path returns the lock file location.
func (g *Guard) Path() string { return g.path }

// Held reports whether this guard currently owns the lock.
func (g *Guard) Held() bool { return g.held }

// Acquire takes the lock with an atomic create-if-absent. A read-then-write
// sequence would race between two near-simultaneous launches; O_EXCL closes
// that window in the filesystem.
func (g *Guard) Acquire() error {
	f, err := os.OpenFile(g.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrSessionLocked, g.path)
		}
		return fmt.Errorf("acquire session lock: %w", err)
	}
	// Content is irrelevant to the protocol; the pid helps an operator
	// decide whether a leftover lock is stale.
	fmt.Fprintf(f, "pid=%d\n", os.Getpid())
	if err := f.Close(); err != nil {
		return fmt.Errorf("acquire session lock: %w", err)
	}
	g.held = true
	return nil
}

// Release removes the lock file. Callers invoke it only on clean completion;
// on a crash or cancellation the lock deliberately stays behind and must be
// cleared by an operator after verifying the target.
func (g *Guard) Release() error {
	if !g.held {
		return fmt.Errorf("release: lock %s is not held by this session", g.path)
	}
	if err := os.Remove(g.path); err != nil {
		return fmt.Errorf("release session lock: %w", err)
	}
	g.held = false
	return nil
}
