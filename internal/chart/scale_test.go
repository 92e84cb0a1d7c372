package chart

import (
	"math"
	"testing"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		input   string
		want    Scale
		wantErr bool
	}{
		{input: "linear", want: ScaleLinear},
		{input: "log", want: ScaleLog},
		{input: "SYMLOG", want: ScaleSymlog},
		{input: " logit ", want: ScaleLogit},
		{input: "", want: ScaleLinear},
		{input: "loglog", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseScale(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseScale(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseScale(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScale(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSymlogNormalize(t *testing.T) {
	s := symlogScale{threshold: 1}

	min, max := -100.0, 100.0
	if got := s.Normalize(min, max, min); got != 0 {
		t.Errorf("Normalize(min) = %v, want 0", got)
	}
	if got := s.Normalize(min, max, max); got != 1 {
		t.Errorf("Normalize(max) = %v, want 1", got)
	}
	if got := s.Normalize(min, max, 0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Normalize(0) = %v, want 0.5 on a symmetric range", got)
	}

	// Monotonic across zero, including the linear region.
	prev := math.Inf(-1)
	for _, x := range []float64{-100, -10, -1, -0.5, 0, 0.5, 1, 10, 100} {
		got := s.Normalize(min, max, x)
		if got <= prev {
			t.Fatalf("not monotonic at x=%v: %v <= %v", x, got, prev)
		}
		prev = got
	}
}

func TestLogitNormalize(t *testing.T) {
	var s logitScale
	min, max := 0.01, 0.99

	if got := s.Normalize(min, max, min); got != 0 {
		t.Errorf("Normalize(min) = %v, want 0", got)
	}
	if got := s.Normalize(min, max, max); got != 1 {
		t.Errorf("Normalize(max) = %v, want 1", got)
	}
	if got := s.Normalize(min, max, 0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Normalize(0.5) = %v, want 0.5 on a symmetric range", got)
	}

	// Out-of-domain values clamp instead of producing NaN.
	if got := s.Normalize(min, max, -1); math.IsNaN(got) {
		t.Error("Normalize(-1) is NaN")
	}
	if got := s.Normalize(min, max, 2); math.IsNaN(got) {
		t.Error("Normalize(2) is NaN")
	}
}

func TestLogitTicksWithinRange(t *testing.T) {
	ticks := logitTicks{}.Ticks(0.05, 0.95)
	if len(ticks) == 0 {
		t.Fatal("no ticks")
	}
	for _, tick := range ticks {
		if tick.Value < 0.05 || tick.Value > 0.95 {
			t.Errorf("tick %v outside range", tick.Value)
		}
	}
}
