package indicator

import (
	"math"
	"testing"
)

func TestEMA_SeededFromFirstValue(t *testing.T) {
	out := EMA([]float64{10, 10, 10, 10}, 5)
	for i, v := range out {
		if v != 10 {
			t.Errorf("index %d: expected 10, got %f", i, v)
		}
	}
}

func TestEMA_Empty(t *testing.T) {
	if out := EMA(nil, 12); len(out) != 0 {
		t.Fatalf("expected empty output, got %d values", len(out))
	}
}

func TestMACD_ShortInputAllUndefined(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	out := MACD(prices, 12, 26, 9)
	for i := range prices {
		if !math.IsNaN(out.MACD[i]) || !math.IsNaN(out.Signal[i]) || !math.IsNaN(out.Hist[i]) {
			t.Fatalf("index %d: expected all NaN for input shorter than slow period", i)
		}
	}
}

func TestMACD_FullInputAllDefined(t *testing.T) {
	prices := make([]float64, 40)
	for i := range prices {
		prices[i] = 100 + 5*math.Sin(float64(i)/3)
	}
	out := MACD(prices, 12, 26, 9)
	if len(out.MACD) != 40 || len(out.Signal) != 40 || len(out.Hist) != 40 {
		t.Fatal("output sequences must match input length")
	}
	for i := range prices {
		if math.IsNaN(out.MACD[i]) || math.IsNaN(out.Signal[i]) || math.IsNaN(out.Hist[i]) {
			t.Fatalf("index %d: expected no NaN for input length >= slow period", i)
		}
	}
}

func TestMACD_HistIsMACDMinusSignal(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 50 + float64(i%7)
	}
	out := MACD(prices, 12, 26, 9)
	for i := range prices {
		want := out.MACD[i] - out.Signal[i]
		if math.Abs(out.Hist[i]-want) > 1e-12 {
			t.Fatalf("index %d: hist %f != macd-signal %f", i, out.Hist[i], want)
		}
	}
}

func TestMACD_RisingTrendBullish(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 + float64(i)*2
	}
	out := MACD(prices, 12, 26, 9)
	last := len(prices) - 1
	if out.MACD[last] <= out.Signal[last] {
		t.Errorf("expected macd > signal in a steady uptrend, got %f <= %f", out.MACD[last], out.Signal[last])
	}
}
