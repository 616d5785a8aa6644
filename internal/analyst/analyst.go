package analyst

import (
	"context"
	"strconv"

	"MarketAnalyst/internal/model"
)

// DataSource is the subset of the vendor router the analysts consume.
type DataSource interface {
	StockData(ctx context.Context, symbol string) (*model.Quote, error)
	OHLCData(ctx context.Context, symbol string, req model.OHLCRequest) (*model.OHLCSeries, error)
	MarketData(ctx context.Context, symbol string) (*model.MarketData, error)
	FinancialData(ctx context.Context, symbol string) (*model.FinancialData, error)
}

func fmtPtr(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func orUnclear(label string) string {
	if label == "" {
		return "unclear"
	}
	return label
}
