package ranking

import "math"

// Normalize maps value onto [0,1] relative to [min,max]. A degenerate range
// carries no information and yields 0.
func Normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

// LogNormalize normalizes heavy-tailed counts on a log10(x+1) scale.
func LogNormalize(value, min, max float64) float64 {
	return Normalize(logScale(value), logScale(min), logScale(max))
}

func logScale(v float64) float64 {
	return math.Log10(v + 1)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

type bounds struct {
	min, max float64
}

func boundsOf(values []float64) bounds {
	if len(values) == 0 {
		return bounds{}
	}
	b := bounds{min: values[0], max: values[0]}
	for _, v := range values[1:] {
		b.min = math.Min(b.min, v)
		b.max = math.Max(b.max, v)
	}
	return b
}
