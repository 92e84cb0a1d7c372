package chart

import (
	"strconv"

	"gonum.org/v1/plot"
)

// scaledTicks wraps a ticker and relabels its ticks in display units by
// dividing the raw value by a fixed per-metric divisor. Tick positions and
// the underlying data are untouched.
type scaledTicks struct {
	base    plot.Ticker
	divisor float64
}

func (t scaledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.base.Ticks(min, max)
	if t.divisor == 0 || t.divisor == 1 {
		return ticks
	}
	for i := range ticks {
		if ticks[i].Label == "" {
			continue // minor tick
		}
		ticks[i].Label = formatTick(ticks[i].Value / t.divisor)
	}
	return ticks
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
