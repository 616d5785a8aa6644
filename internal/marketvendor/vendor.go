package vendor

import (
	"context"

	"MarketAnalyst/internal/config"
	"MarketAnalyst/internal/model"
)

// Capability is a logical data operation served by one or more vendors.
type Capability string

const (
	CapStockData     Capability = "get_stock_data"
	CapOHLCData      Capability = "get_ohlc_data"
	CapMarketData    Capability = "get_market_data"
	CapFinancialData Capability = "get_financial_data"
)

// categories maps each capability to its category for priority lookup.
// A capability missing from this table is not registered at all.
var categories = map[Capability]string{
	CapStockData:     config.CategoryCoreStock,
	CapOHLCData:      config.CategoryTechnical,
	CapMarketData:    config.CategoryFundamental,
	CapFinancialData: config.CategoryFundamental,
}

// defaultOrder applies when neither tool_vendors nor data_vendors configure
// a priority list for a capability.
var defaultOrder = []string{"finnhub", "yahoo"}

// Vendor is a named external data source.
type Vendor interface {
	Name() string
}

// QuoteFetcher serves get_stock_data.
type QuoteFetcher interface {
	Vendor
	FetchQuote(ctx context.Context, symbol string) (*model.Quote, error)
}

// OHLCFetcher serves get_ohlc_data.
type OHLCFetcher interface {
	Vendor
	FetchOHLC(ctx context.Context, symbol string, req model.OHLCRequest) (*model.OHLCSeries, error)
}

// MarketDataFetcher serves get_market_data.
type MarketDataFetcher interface {
	Vendor
	FetchMarketData(ctx context.Context, symbol string) (*model.MarketData, error)
}

// FinancialDataFetcher serves get_financial_data.
type FinancialDataFetcher interface {
	Vendor
	FetchFinancialData(ctx context.Context, symbol string) (*model.FinancialData, error)
}
