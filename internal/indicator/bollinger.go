package indicator

import "math"

// BollingerSeries holds the three band sequences, each as long as the input
// price sequence.
type BollingerSeries struct {
	Middle []float64
	Upper  []float64
	Lower  []float64
}

// BollingerBands computes a fixed-window rolling mean plus/minus width
// sample standard deviations. The first window-1 positions are NaN; an
// input shorter than window yields all-NaN sequences. Unlike RSI there is
// no growing-window warm-up here.
func BollingerBands(prices []float64, window int, width float64) BollingerSeries {
	n := len(prices)
	b := BollingerSeries{Middle: nans(n), Upper: nans(n), Lower: nans(n)}
	if n < window || window < 2 {
		return b
	}

	for i := window - 1; i < n; i++ {
		win := prices[i-window+1 : i+1]
		var sum float64
		for _, p := range win {
			sum += p
		}
		mean := sum / float64(window)
		var sq float64
		for _, p := range win {
			d := p - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(window-1))
		b.Middle[i] = mean
		b.Upper[i] = mean + width*std
		b.Lower[i] = mean - width*std
	}
	return b
}
