package metrics

import "testing"

func TestFingerprintStable(t *testing.T) {
	ctx := Context{
		"bs":      StringValue("4k"),
		"numjobs": IntValue(8),
		"rwmix":   FloatValue(0.7),
	}

	first := Fingerprint(ctx)
	for i := 0; i < 100; i++ {
		if got := Fingerprint(ctx); got != first {
			t.Fatalf("fingerprint changed on call %d: %s != %s", i, got, first)
		}
	}
	if len(first) != fingerprintLen {
		t.Fatalf("fingerprint length = %d, want %d", len(first), fingerprintLen)
	}
}

func TestFingerprintOrderIndependent(t *testing.T) {
	// Two contexts built in different insertion orders must hash the same.
	a := Context{}
	a["bs"] = StringValue("4k")
	a["iodepth"] = IntValue(4)
	a["numjobs"] = IntValue(1)

	b := Context{}
	b["numjobs"] = IntValue(1)
	b["iodepth"] = IntValue(4)
	b["bs"] = StringValue("4k")

	if Fingerprint(a) != Fingerprint(b) {
		t.Fatalf("equal contexts produced different fingerprints: %s != %s", Fingerprint(a), Fingerprint(b))
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := Context{"bs": StringValue("4k"), "iodepth": IntValue(4)}

	tests := []struct {
		name  string
		other Context
	}{
		{
			name:  "changed value",
			other: Context{"bs": StringValue("8k"), "iodepth": IntValue(4)},
		},
		{
			name:  "added key",
			other: Context{"bs": StringValue("4k"), "iodepth": IntValue(4), "numjobs": IntValue(1)},
		},
		{
			name:  "removed key",
			other: Context{"bs": StringValue("4k")},
		},
		{
			name:  "same display different kind",
			other: Context{"bs": StringValue("4k"), "iodepth": StringValue("4")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Fingerprint(base) == Fingerprint(tt.other) {
				t.Fatalf("fingerprint did not change for %s", tt.name)
			}
		})
	}
}
