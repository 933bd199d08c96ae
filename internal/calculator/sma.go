package calculator

// CalculateSMA computes the rolling simple moving average of values over
// the given window. Positions before MinPeriods(window) bars are available
// are NaN; between that and a full window, the mean runs over what exists.
func CalculateSMA(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 0 {
		return out
	}
	minP := MinPeriods(window)
	for i := range values {
		have := i + 1
		if have < minP {
			continue
		}
		n := window
		if have < window {
			n = have
		}
		sum := 0.0
		for j := i - n + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(n)
	}
	return out
}
