package notifier

import (
	"fmt"
	"strings"

	"MarketAnalyst/internal/analyst"
)

// FormatTechnicalReport formats a technical report into a Telegram message.
func FormatTechnicalReport(r *analyst.TechnicalReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Technical analysis</b> | %s | %s\n", r.Symbol, r.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("source: %s\n\n", r.Source))

	if r.Quote != nil {
		b.WriteString(fmt.Sprintf("Price: %s (open %s, high %s, low %s)\n",
			num(r.Quote.Current), num(r.Quote.Open), num(r.Quote.High), num(r.Quote.Low)))
		b.WriteString(fmt.Sprintf("Change: %s%%\n\n", num(r.Quote.ChangePercent)))
	}

	if ind := r.Indicators; ind != nil {
		b.WriteString("📈 <b>Indicators (30 daily bars):</b>\n")
		b.WriteString(fmt.Sprintf("  RSI(14): %s → %s\n", num(ind.Latest.RSI), trendOrDash(ind.Trends.RSI)))
		b.WriteString(fmt.Sprintf("  MACD: %s / signal %s → %s\n",
			num(ind.Latest.MACD), num(ind.Latest.MACDSignal), trendOrDash(ind.Trends.MACD)))
		b.WriteString(fmt.Sprintf("  Bollinger: upper %s, lower %s → %s\n",
			num(ind.Latest.BollingerUpper), num(ind.Latest.BollingerLower), trendOrDash(ind.Trends.Bollinger)))
	}

	if r.Text != "" {
		b.WriteString("\n🤖 <b>Analyst commentary:</b>\n")
		b.WriteString(r.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatFundamentalReport formats a fundamental report into a Telegram message.
func FormatFundamentalReport(r *analyst.FundamentalReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🏦 <b>Fundamental analysis</b> | %s | %s\n", r.Symbol, r.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("source: %s\n\n", r.Source))

	if m := r.Market; m != nil {
		b.WriteString(fmt.Sprintf("Price: %.2f | Market cap: %.0f\n", m.CurrentPrice, m.MarketCap))
		b.WriteString(fmt.Sprintf("PE: %.2f (%s) | PB: %.2f\n\n", m.PERatio, r.Trends.PERatio, m.PBRatio))
	}
	if f := r.Financials; f != nil {
		b.WriteString("📒 <b>Financials:</b>\n")
		b.WriteString(fmt.Sprintf("  Revenue: %.0f (YoY %+.1f%%, %s)\n", f.TotalRevenue, f.RevenueGrowthYoY, r.Trends.RevenueGrowth))
		b.WriteString(fmt.Sprintf("  Net profit: %.0f (YoY %+.1f%%)\n", f.NetProfit, f.ProfitGrowthYoY))
		b.WriteString(fmt.Sprintf("  ROE: %.1f%% (%s)\n", f.ROE, r.Trends.ROE))
		b.WriteString(fmt.Sprintf("  Debt/equity: %.2f\n", f.DebtToEquity))
	}

	if r.Text != "" {
		b.WriteString("\n🤖 <b>Analyst commentary:</b>\n")
		b.WriteString(r.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func num(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func trendOrDash(label string) string {
	if label == "" {
		return "n/a"
	}
	return label
}
