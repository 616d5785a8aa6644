package indicator

import "math"

// RSI computes the relative strength index over window bars. The output has
// the same length as prices. Below window bars of history the gain/loss
// averages use a growing window of at least one sample; at or above it the
// window is fixed. An input shorter than window yields an all-NaN sequence.
// A zero average loss saturates RSI at 100; a bar with neither gains nor
// losses in scope stays NaN.
func RSI(prices []float64, window int) []float64 {
	n := len(prices)
	if n < window {
		return nans(n)
	}

	gains := make([]float64, n)
	losses := make([]float64, n)
	// Bar 0 has no prior close; it contributes zero gain and zero loss.
	for i := 1; i < n; i++ {
		d := prices[i] - prices[i-1]
		if d > 0 {
			gains[i] = d
		} else {
			losses[i] = -d
		}
	}

	out := make([]float64, n)
	var sumGain, sumLoss float64
	for i := 0; i < n; i++ {
		sumGain += gains[i]
		sumLoss += losses[i]
		samples := i + 1
		if i >= window {
			sumGain -= gains[i-window]
			sumLoss -= losses[i-window]
			samples = window
		}
		avgGain := sumGain / float64(samples)
		avgLoss := sumLoss / float64(samples)
		rs := avgGain / avgLoss // +Inf saturates below, 0/0 stays NaN
		out[i] = 100 - 100/(1+rs)
	}
	return out
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
