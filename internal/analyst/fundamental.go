package analyst

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"MarketAnalyst/internal/llm"
	"MarketAnalyst/internal/model"
)

// Fundamental trend labels.
const (
	GrowthRapid     = "rapid growth (>20%)"
	GrowthSteady    = "steady growth (5%-20%)"
	GrowthStagnant  = "stagnant (-5%-5%)"
	GrowthDeclining = "declining (<-5%)"

	ROEExcellent = "excellent (>15%, strong profitability)"
	ROEGood      = "good (8%-15%, average profitability)"
	ROEWeak      = "weak (<8%, poor profitability)"

	PEUndervalued = "undervalued (<15x)"
	PEFair        = "fairly valued (15-30x)"
	PEOvervalued  = "overvalued (>30x)"
)

// FundamentalTrends classifies the headline fundamental metrics.
type FundamentalTrends struct {
	RevenueGrowth string
	ROE           string
	PERatio       string
}

// FundamentalReport is the structured output of one fundamental analysis run.
type FundamentalReport struct {
	Symbol      string
	Market      *model.MarketData
	Financials  *model.FinancialData
	Trends      FundamentalTrends
	Text        string // LLM commentary, empty when no generator is wired
	Source      string
	GeneratedAt time.Time
}

// Fundamental fetches market and financial data through the vendor router,
// classifies the headline metrics, and optionally asks an LLM for
// commentary.
type Fundamental struct {
	data DataSource
	gen  llm.Generator // nil skips commentary generation
}

// NewFundamental creates a fundamental analyst. gen may be nil.
func NewFundamental(data DataSource, gen llm.Generator) *Fundamental {
	return &Fundamental{data: data, gen: gen}
}

// Analyze produces a fundamental report for symbol.
func (a *Fundamental) Analyze(ctx context.Context, symbol string) (*FundamentalReport, error) {
	log.Printf("[INFO] fundamental analyst: fetching data for %s", symbol)
	market, err := a.data.MarketData(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("market data: %w", err)
	}
	financials, err := a.data.FinancialData(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("financial data: %w", err)
	}

	report := &FundamentalReport{
		Symbol:      symbol,
		Market:      market,
		Financials:  financials,
		Trends:      ClassifyFundamentals(financials, market),
		Source:      market.Source,
		GeneratedAt: time.Now(),
	}

	if a.gen != nil {
		text, err := a.gen.Generate(ctx, fundamentalPrompt(symbol, market, financials, report.Trends))
		if err != nil {
			return nil, fmt.Errorf("generate report: %w", err)
		}
		report.Text = text
	}
	return report, nil
}

// ClassifyFundamentals maps revenue growth, ROE, and PE into qualitative
// bands.
func ClassifyFundamentals(fin *model.FinancialData, mkt *model.MarketData) FundamentalTrends {
	var t FundamentalTrends

	switch g := fin.RevenueGrowthYoY; {
	case g > 20:
		t.RevenueGrowth = GrowthRapid
	case g >= 5:
		t.RevenueGrowth = GrowthSteady
	case g >= -5:
		t.RevenueGrowth = GrowthStagnant
	default:
		t.RevenueGrowth = GrowthDeclining
	}

	switch r := fin.ROE; {
	case r > 15:
		t.ROE = ROEExcellent
	case r >= 8:
		t.ROE = ROEGood
	default:
		t.ROE = ROEWeak
	}

	switch pe := mkt.PERatio; {
	case pe < 15:
		t.PERatio = PEUndervalued
	case pe <= 30:
		t.PERatio = PEFair
	default:
		t.PERatio = PEOvervalued
	}
	return t
}

func fundamentalPrompt(symbol string, mkt *model.MarketData, fin *model.FinancialData, trends FundamentalTrends) string {
	var b strings.Builder
	b.WriteString("You are a senior fundamental analyst. Based on the data below, write a fundamental analysis report for ")
	b.WriteString(symbol)
	b.WriteString(".\n\n")

	b.WriteString(fmt.Sprintf("### 1. Valuation (%s)\n", symbol))
	b.WriteString(fmt.Sprintf("- Current price: %s USD\n", fmtFloat(mkt.CurrentPrice)))
	b.WriteString(fmt.Sprintf("- Market cap: %s\n", fmtFloat(mkt.MarketCap)))
	b.WriteString(fmt.Sprintf("- PE: %s (%s)\n", fmtFloat(mkt.PERatio), trends.PERatio))
	b.WriteString(fmt.Sprintf("- PB: %s\n\n", fmtFloat(mkt.PBRatio)))

	b.WriteString("### 2. Financials\n")
	b.WriteString(fmt.Sprintf("- Total revenue: %s\n", fmtFloat(fin.TotalRevenue)))
	b.WriteString(fmt.Sprintf("- Net profit: %s\n", fmtFloat(fin.NetProfit)))
	b.WriteString(fmt.Sprintf("- Revenue growth YoY: %s%% (%s)\n", fmtFloat(fin.RevenueGrowthYoY), trends.RevenueGrowth))
	b.WriteString(fmt.Sprintf("- Profit growth YoY: %s%%\n", fmtFloat(fin.ProfitGrowthYoY)))
	b.WriteString(fmt.Sprintf("- ROE: %s%% (%s)\n", fmtFloat(fin.ROE), trends.ROE))
	b.WriteString(fmt.Sprintf("- Debt to equity: %s\n\n", fmtFloat(fin.DebtToEquity)))

	b.WriteString("### Requirements\n")
	b.WriteString("1. Assess growth quality, profitability, and balance sheet risk.\n")
	b.WriteString("2. Judge whether the current valuation is justified by the fundamentals.\n")
	b.WriteString("3. Give a clear buy/sell/hold view with the main risks.\n")
	b.WriteString("4. Ground every claim in the data above, no speculation. Under 500 words.\n")
	return b.String()
}
