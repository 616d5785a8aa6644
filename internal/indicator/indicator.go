package indicator

import (
	"math"

	"MarketAnalyst/internal/model"
)

// Default indicator parameters.
const (
	DefaultRSIWindow       = 14
	DefaultMACDFast        = 12
	DefaultMACDSlow        = 26
	DefaultMACDSignal      = 9
	DefaultBollingerWindow = 20
	DefaultBollingerWidth  = 2
)

// Trend labels. An empty label means the classification was not computable.
const (
	TrendOverbought       = "overbought (possible pullback)"
	TrendOversold         = "oversold (possible rebound)"
	TrendNeutral          = "neutral"
	TrendBullishCrossover = "bullish crossover"
	TrendBearishCrossover = "bearish crossover"
	TrendUpperBand        = "pressured at upper band"
	TrendLowerBand        = "supported at lower band"
	TrendMidRange         = "mid-range, trend unclear"
)

// Latest holds the newest value of each indicator; nil when the input
// series was too short to define it.
type Latest struct {
	RSI            *float64
	MACD           *float64
	MACDSignal     *float64
	BollingerUpper *float64
	BollingerLower *float64
	CurrentPrice   *float64
}

// Trends holds one qualitative label per indicator.
type Trends struct {
	RSI       string
	MACD      string
	Bollinger string
}

// Raw holds the full per-bar sequences, same length as the input closes.
// NaN marks positions without enough history.
type Raw struct {
	RSI       []float64
	MACD      MACDSeries
	Bollinger BollingerSeries
}

// Result is the output of one indicator computation.
type Result struct {
	Latest Latest
	Trends Trends
	Raw    Raw
}

// Compute runs RSI, MACD, and Bollinger Bands over the series' closing
// prices and classifies each latest value into a trend label. It performs
// no I/O and never fails: insufficient history degrades to NaN raw values,
// nil latest values, and empty labels. An empty close sequence yields empty
// sequences throughout.
func Compute(quote *model.Quote, series *model.OHLCSeries) *Result {
	var closes []float64
	if series != nil {
		closes = series.Close
	}

	res := &Result{Raw: Raw{
		RSI:       RSI(closes, DefaultRSIWindow),
		MACD:      MACD(closes, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal),
		Bollinger: BollingerBands(closes, DefaultBollingerWindow, DefaultBollingerWidth),
	}}

	res.Latest.RSI = last(res.Raw.RSI)
	res.Latest.MACD = last(res.Raw.MACD.MACD)
	res.Latest.MACDSignal = last(res.Raw.MACD.Signal)
	res.Latest.BollingerUpper = last(res.Raw.Bollinger.Upper)
	res.Latest.BollingerLower = last(res.Raw.Bollinger.Lower)
	if quote != nil {
		res.Latest.CurrentPrice = quote.Current
	}

	if v := res.Latest.RSI; v != nil {
		switch {
		case *v > 70:
			res.Trends.RSI = TrendOverbought
		case *v < 30:
			res.Trends.RSI = TrendOversold
		default:
			res.Trends.RSI = TrendNeutral
		}
	}
	if m, s := res.Latest.MACD, res.Latest.MACDSignal; m != nil && s != nil {
		if *m > *s {
			res.Trends.MACD = TrendBullishCrossover
		} else {
			res.Trends.MACD = TrendBearishCrossover
		}
	}
	if p, u, l := res.Latest.CurrentPrice, res.Latest.BollingerUpper, res.Latest.BollingerLower; p != nil && u != nil && l != nil {
		switch {
		case *p >= *u:
			res.Trends.Bollinger = TrendUpperBand
		case *p <= *l:
			res.Trends.Bollinger = TrendLowerBand
		default:
			res.Trends.Bollinger = TrendMidRange
		}
	}
	return res
}

func last(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	v := xs[len(xs)-1]
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
