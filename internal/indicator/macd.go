package indicator

// MACDSeries holds the three MACD output sequences, each as long as the
// input price sequence.
type MACDSeries struct {
	MACD   []float64
	Signal []float64
	Hist   []float64
}

// EMA computes the exponential moving average of xs with smoothing factor
// 2/(period+1), seeded from the first value. The result is defined from the
// first sample onward.
func EMA(xs []float64, period int) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}
	alpha := 2 / (float64(period) + 1)
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}
	return out
}

// MACD computes the MACD line (fast EMA minus slow EMA), its signal line,
// and the histogram. An input shorter than the slow period yields all-NaN
// sequences; otherwise every position is defined.
func MACD(prices []float64, fast, slow, signal int) MACDSeries {
	n := len(prices)
	if n < slow {
		return MACDSeries{MACD: nans(n), Signal: nans(n), Hist: nans(n)}
	}

	emaFast := EMA(prices, fast)
	emaSlow := EMA(prices, slow)
	macd := make([]float64, n)
	for i := range macd {
		macd[i] = emaFast[i] - emaSlow[i]
	}
	sig := EMA(macd, signal)
	hist := make([]float64, n)
	for i := range hist {
		hist[i] = macd[i] - sig[i]
	}
	return MACDSeries{MACD: macd, Signal: sig, Hist: hist}
}
