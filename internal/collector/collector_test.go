package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/torosent/benchrig/internal/metrics"
)

const sampleYAML = `- iops: 100
  bw: 2048
  lat: 130.5
  ctx:
    bs: 4k
    iodepth: 1
    fname: randread.log
    timestamp: 1700000001
- iops: 200
  ctx:
    bs: 4k
    iodepth: 4
    fname: randread.log
    timestamp: 1700000002
`

const sampleJSON = `[
  {"iops": 50, "lat": 99.5, "ctx": {"bs": "8k", "iodepth": 1, "fname": "seqwrite.log", "timestamp": 1700000003}}
]`

func writeArtifact(t *testing.T, root, dir, name, content string) {
	t.Helper()
	aux := filepath.Join(root, dir, auxDirName)
	if err := os.MkdirAll(aux, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(aux, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "randread.tc", yamlArtifactName, sampleYAML)
	writeArtifact(t, root, filepath.Join("nested", "seqwrite.tc"), jsonArtifactName, sampleJSON)

	// Directories that must not qualify: wrong suffix, suffix without artifact.
	writeArtifact(t, root, "notes", yamlArtifactName, sampleYAML)
	if err := os.MkdirAll(filepath.Join(root, "empty.tc"), 0o750); err != nil {
		t.Fatal(err)
	}

	res, err := Collect(root)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if len(res.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(res.Records))
	}

	var yamlRec, jsonRec *metrics.Record
	for i := range res.Records {
		switch res.Records[i].Ctx["fname"].String() {
		case "randread.log":
			if yamlRec == nil {
				yamlRec = &res.Records[i]
			}
		case "seqwrite.log":
			jsonRec = &res.Records[i]
		}
	}
	if yamlRec == nil || jsonRec == nil {
		t.Fatal("records from both artifacts expected")
	}

	if got := yamlRec.Values[metrics.MetricIOPS]; got != 100 {
		t.Errorf("yaml iops = %v, want 100", got)
	}
	if got := yamlRec.Values[metrics.MetricLatency]; got != 130.5 {
		t.Errorf("yaml lat = %v, want 130.5", got)
	}
	if got := yamlRec.Ctx["bs"]; !got.Equal(metrics.StringValue("4k")) {
		t.Errorf("yaml bs = %v, want string 4k", got)
	}
	if got := yamlRec.Ctx["iodepth"]; !got.Equal(metrics.IntValue(1)) {
		t.Errorf("yaml iodepth = %v, want int 1", got)
	}

	if got := jsonRec.Values[metrics.MetricIOPS]; got != 50 {
		t.Errorf("json iops = %v, want 50", got)
	}
	if got := jsonRec.Ctx["iodepth"]; !got.Equal(metrics.IntValue(1)) {
		t.Errorf("json iodepth = %v, want int 1", got)
	}
	if got := jsonRec.Ctx["fname"]; !got.Equal(metrics.StringValue("seqwrite.log")) {
		t.Errorf("json fname = %v, want seqwrite.log", got)
	}
}

func TestCollectMalformedArtifactIsWarning(t *testing.T) {
	root := t.TempDir()
	writeArtifact(t, root, "good.tc", yamlArtifactName, sampleYAML)
	writeArtifact(t, root, "bad.tc", yamlArtifactName, "{not: [valid")
	writeArtifact(t, root, "nokeys.tc", yamlArtifactName, "- iops: 1\n  ctx:\n    bs: 4k\n")

	res, err := Collect(root)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records from the good artifact, got %d", len(res.Records))
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", res.Warnings)
	}
}

func TestCollectMissingRoot(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestCollectJSONTypeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not an array", content: `{"iops": 1}`},
		{name: "non numeric metric", content: `[{"iops": "fast", "ctx": {"fname": "a", "timestamp": 1}}]`},
		{name: "invalid json", content: `[{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeArtifact(t, root, "case.tc", jsonArtifactName, tt.content)
			res, err := Collect(root)
			if err != nil {
				t.Fatalf("Collect: %v", err)
			}
			if len(res.Warnings) != 1 {
				t.Fatalf("expected 1 warning, got %v", res.Warnings)
			}
			if len(res.Records) != 0 {
				t.Fatalf("expected no records, got %d", len(res.Records))
			}
		})
	}
}
