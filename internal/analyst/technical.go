package analyst

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"MarketAnalyst/internal/indicator"
	"MarketAnalyst/internal/llm"
	"MarketAnalyst/internal/model"
)

// TechnicalReport is the structured output of one technical analysis run.
type TechnicalReport struct {
	Symbol      string
	Quote       *model.Quote
	Indicators  *indicator.Result
	Text        string // LLM commentary, empty when no generator is wired
	Source      string
	GeneratedAt time.Time
}

// Technical fetches quote and candle data through the vendor router,
// computes the indicator set, and optionally asks an LLM for commentary.
type Technical struct {
	data DataSource
	gen  llm.Generator // nil skips commentary generation
}

// NewTechnical creates a technical analyst. gen may be nil.
func NewTechnical(data DataSource, gen llm.Generator) *Technical {
	return &Technical{data: data, gen: gen}
}

// Analyze produces a technical report for symbol from the latest quote and
// 30 daily candles.
func (a *Technical) Analyze(ctx context.Context, symbol string) (*TechnicalReport, error) {
	log.Printf("[INFO] technical analyst: fetching data for %s", symbol)
	quote, err := a.data.StockData(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("stock data: %w", err)
	}
	series, err := a.data.OHLCData(ctx, symbol, model.OHLCRequest{Resolution: "1D", Count: 30})
	if err != nil {
		return nil, fmt.Errorf("ohlc data: %w", err)
	}

	ind := indicator.Compute(quote, series)
	report := &TechnicalReport{
		Symbol:      symbol,
		Quote:       quote,
		Indicators:  ind,
		Source:      quote.Source,
		GeneratedAt: time.Now(),
	}

	if a.gen != nil {
		text, err := a.gen.Generate(ctx, technicalPrompt(symbol, quote, ind))
		if err != nil {
			return nil, fmt.Errorf("generate report: %w", err)
		}
		report.Text = text
	}
	return report, nil
}

func technicalPrompt(symbol string, quote *model.Quote, ind *indicator.Result) string {
	var b strings.Builder
	b.WriteString("You are a senior financial technical analyst. Based on the data below, write a detailed technical analysis report for ")
	b.WriteString(symbol)
	b.WriteString(".\n\n")

	b.WriteString(fmt.Sprintf("### 1. Market data (%s)\n", symbol))
	b.WriteString(fmt.Sprintf("- Current price: %s USD\n", fmtPtr(quote.Current)))
	b.WriteString(fmt.Sprintf("- Open: %s USD\n", fmtPtr(quote.Open)))
	b.WriteString(fmt.Sprintf("- High: %s USD\n", fmtPtr(quote.High)))
	b.WriteString(fmt.Sprintf("- Low: %s USD\n", fmtPtr(quote.Low)))
	b.WriteString(fmt.Sprintf("- Volume: %s\n", fmtPtr(quote.Volume)))
	b.WriteString(fmt.Sprintf("- Change: %s%%\n\n", fmtPtr(quote.ChangePercent)))

	b.WriteString("### 2. Technical indicators (last 30 daily bars)\n")
	b.WriteString(fmt.Sprintf("- RSI(14): %s, trend: %s\n",
		fmtPtr(ind.Latest.RSI), orUnclear(ind.Trends.RSI)))
	b.WriteString(fmt.Sprintf("- MACD: %s (signal: %s), trend: %s\n",
		fmtPtr(ind.Latest.MACD), fmtPtr(ind.Latest.MACDSignal), orUnclear(ind.Trends.MACD)))
	b.WriteString(fmt.Sprintf("- Bollinger Bands: upper=%s, lower=%s, trend: %s\n\n",
		fmtPtr(ind.Latest.BollingerUpper), fmtPtr(ind.Latest.BollingerLower), orUnclear(ind.Trends.Bollinger)))

	b.WriteString("### Requirements\n")
	b.WriteString("1. Call the short-term (1-3 days) and medium-term (1-2 weeks) direction: up, down, or sideways.\n")
	b.WriteString("2. Name support and resistance levels and explain how you derived them.\n")
	b.WriteString("3. Give a clear buy/sell/hold recommendation and its risks.\n")
	b.WriteString("4. Ground every claim in the indicator data above, no speculation.\n")
	b.WriteString("5. Use clear bullet points, professional but readable, under 500 words.\n")
	return b.String()
}
