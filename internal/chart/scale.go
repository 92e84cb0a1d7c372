package chart

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/plot"
)

// Scale names an axis transform.
type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
	ScaleSymlog Scale = "symlog"
	ScaleLogit  Scale = "logit"
)

// ParseScale validates a scale name from the CLI. Empty means linear.
func ParseScale(s string) (Scale, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return ScaleLinear, nil
	}
	sc := Scale(trimmed)
	switch sc {
	case ScaleLinear, ScaleLog, ScaleSymlog, ScaleLogit:
		return sc, nil
	}
	return "", fmt.Errorf("scale must be one of linear, log, symlog, logit, got %q", s)
}

// applyScale installs the normalizer and ticker for scale on axis. The
// divisor feeds the display-unit tick formatter and never touches the data.
func applyScale(axis *plot.Axis, scale Scale, divisor float64) error {
	switch scale {
	case ScaleLinear, "":
		axis.Tick.Marker = scaledTicks{base: plot.DefaultTicks{}, divisor: divisor}
	case ScaleLog:
		axis.Scale = plot.LogScale{}
		axis.Tick.Marker = scaledTicks{base: plot.LogTicks{Prec: -1}, divisor: divisor}
	case ScaleSymlog:
		axis.Scale = symlogScale{threshold: 1}
		axis.Tick.Marker = scaledTicks{base: plot.DefaultTicks{}, divisor: divisor}
	case ScaleLogit:
		axis.Scale = logitScale{}
		axis.Tick.Marker = scaledTicks{base: logitTicks{}, divisor: divisor}
	default:
		return fmt.Errorf("unsupported scale %q", scale)
	}
	return nil
}

// symlogScale is a signed log transform, linear within ±threshold of zero so
// zero and negative values stay representable.
type symlogScale struct {
	threshold float64
}

func (s symlogScale) Normalize(min, max, x float64) float64 {
	tmin, tmax := s.transform(min), s.transform(max)
	if tmax == tmin {
		return 0.5
	}
	return (s.transform(x) - tmin) / (tmax - tmin)
}

func (s symlogScale) transform(x float64) float64 {
	thr := s.threshold
	if thr <= 0 {
		thr = 1
	}
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	return sign * math.Log1p(math.Abs(x)/thr)
}

// logitScale maps the open interval (0, 1) through log(x/(1-x)), expanding
// both tails. Values are clamped just inside the domain.
type logitScale struct{}

const logitEps = 1e-9

func (logitScale) Normalize(min, max, x float64) float64 {
	tmin, tmax := logitTransform(min), logitTransform(max)
	if tmax == tmin {
		return 0.5
	}
	return (logitTransform(x) - tmin) / (tmax - tmin)
}

func logitTransform(x float64) float64 {
	if x < logitEps {
		x = logitEps
	}
	if x > 1-logitEps {
		x = 1 - logitEps
	}
	return math.Log(x / (1 - x))
}

// logitTicks marks the quantiles a logit axis is usually read at.
type logitTicks struct{}

func (logitTicks) Ticks(min, max float64) []plot.Tick {
	candidates := []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99, 0.999}
	var ticks []plot.Tick
	for _, v := range candidates {
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}
