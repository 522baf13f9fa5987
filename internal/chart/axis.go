package chart

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// niceStep picks a tick step of 1, 2 or 5 times a power of ten so that
// [0, top] gets roughly target ticks. Axes show counts, so the step is
// never below 1.
func niceStep(top float64, target int) float64 {
	if top <= 0 || target <= 0 {
		return 1
	}

	raw := top / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))

	step := 10 * mag
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}

	if step < 1 {
		step = 1
	}
	return step
}

// ticks returns the tick values from 0 through the first multiple of the
// step that is >= top.
func ticks(top float64, target int) []float64 {
	step := niceStep(top, target)
	end := math.Ceil(top/step) * step
	if end <= 0 {
		end = step
	}

	var out []float64
	for v := 0.0; v <= end+step/2; v += step {
		out = append(out, v)
	}
	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quantile returns the q-quantile of sorted values, interpolating linearly
// along the empirical distribution. It returns 0 for no values.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return stat.Quantile(q, stat.LinInterp, sorted, nil)
}
