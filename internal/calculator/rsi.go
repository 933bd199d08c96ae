package calculator

// rsiEpsilon keeps the RS ratio defined when there are no losses.
const rsiEpsilon = 1e-9

// CalculateRSI computes the relative strength index over the given window
// using exponentially-weighted averages of gains and losses with a center
// of mass of window-1. The first position has no prior delta and is NaN.
// Bounded in [0,100] by construction.
func CalculateRSI(closes []float64, window int) []float64 {
	out := nanSlice(len(closes))
	if window <= 0 || len(closes) < 2 {
		return out
	}
	alpha := 1.0 / float64(window)
	var avgGain, avgLoss float64
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		if i == 1 {
			avgGain, avgLoss = gain, loss
		} else {
			avgGain += alpha * (gain - avgGain)
			avgLoss += alpha * (loss - avgLoss)
		}
		rs := avgGain / (avgLoss + rsiEpsilon)
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}
