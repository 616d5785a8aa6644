package model

// MarketData holds valuation-level market data for a symbol. Vendors that
// omit a field leave it at zero.
type MarketData struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	OpenPrice    float64 `json:"open_price"`
	HighPrice    float64 `json:"high_price"`
	LowPrice     float64 `json:"low_price"`
	MarketCap    float64 `json:"market_cap"`
	PERatio      float64 `json:"pe_ratio"`
	PBRatio      float64 `json:"pb_ratio"`
	Source       string  `json:"source"`
	Timestamp    int64   `json:"timestamp"`
}

// FinancialData holds fundamental financial metrics for a symbol.
type FinancialData struct {
	Symbol           string  `json:"symbol"`
	TotalRevenue     float64 `json:"total_revenue"`
	NetProfit        float64 `json:"net_profit"`
	RevenueGrowthYoY float64 `json:"revenue_growth_yoy"`
	ProfitGrowthYoY  float64 `json:"profit_growth_yoy"`
	ROE              float64 `json:"roe"`
	DebtToEquity     float64 `json:"debt_to_equity"`
	Source           string  `json:"source"`
}
