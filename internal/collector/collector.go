// Package collector walks a run's output tree and loads the metric records
// the execution engine left behind.
//
// A directory qualifies as a result source when its name carries the testcase
// script suffix and it contains an _aux/metrics.yml (or _aux/metrics.json)
// artifact. Partial trees from interrupted runs are an expected operating
// mode: unreadable or malformed artifacts become warnings on the returned
// [Result], never hard failures.
//
// Walk order follows the filesystem and is not guaranteed deterministic
// across hosts; callers needing a fixed order must sort downstream (the
// aggregation pass does, via fingerprint ordering and stable point sorting).
package collector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/torosent/benchrig/internal/metrics"
)

const (
	// ResultDirSuffix marks directories produced by one testcase script run.
	ResultDirSuffix = ".tc"

	auxDirName       = "_aux"
	yamlArtifactName = "metrics.yml"
	jsonArtifactName = "metrics.json"
)

// Warning records a skipped artifact and why.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// Result is the outcome of one collection pass.
type Result struct {
	Records  []metrics.Record
	Warnings []Warning
}

// Collect recursively visits root and parses every qualifying artifact,
// appending records in visit order.
func Collect(root string) (Result, error) {
	if _, err := os.Stat(root); err != nil {
		return Result{}, fmt.Errorf("output root: %w", err)
	}

	var res Result
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			res.Warnings = append(res.Warnings, Warning{Path: path, Err: walkErr})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() || !strings.HasSuffix(d.Name(), ResultDirSuffix) {
			return nil
		}

		artifact, parse, ok := findArtifact(path)
		if !ok {
			return nil
		}
		records, err := parse(artifact)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Path: artifact, Err: err})
			return nil
		}
		res.Records = append(res.Records, records...)
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

type parseFunc func(path string) ([]metrics.Record, error)

func findArtifact(dir string) (string, parseFunc, bool) {
	yml := filepath.Join(dir, auxDirName, yamlArtifactName)
	if _, err := os.Stat(yml); err == nil {
		return yml, parseYAMLArtifact, true
	}
	jsn := filepath.Join(dir, auxDirName, jsonArtifactName)
	if _, err := os.Stat(jsn); err == nil {
		return jsn, parseJSONArtifact, true
	}
	return "", nil, false
}

// validateRecords applies the mandatory-key check shared by both formats.
func validateRecords(records []metrics.Record) error {
	for i, rec := range records {
		if err := rec.Ctx.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if len(rec.Values) == 0 {
			return fmt.Errorf("record %d has no metric fields", i)
		}
	}
	return nil
}
