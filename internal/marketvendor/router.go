package vendor

import (
	"context"
	"log"

	"MarketAnalyst/internal/config"
	"MarketAnalyst/internal/model"
)

// Router resolves a capability to a priority-ordered candidate vendor list
// and invokes candidates in order until one succeeds. Vendors are always
// tried sequentially, never in parallel, so the first-success contract is
// well defined and no duplicate billable calls are made.
type Router struct {
	registry *Registry
	store    *config.Store
}

// NewRouter creates a router over the given registry and configuration.
func NewRouter(registry *Registry, store *config.Store) *Router {
	return &Router{registry: registry, store: store}
}

// StockData fetches a normalized real-time quote for symbol.
func (r *Router) StockData(ctx context.Context, symbol string) (*model.Quote, error) {
	out, err := r.resolve(CapStockData, func(v Vendor) (any, error) {
		return v.(QuoteFetcher).FetchQuote(ctx, symbol)
	})
	if err != nil {
		return nil, err
	}
	return out.(*model.Quote), nil
}

// OHLCData fetches a normalized candle series for symbol.
func (r *Router) OHLCData(ctx context.Context, symbol string, req model.OHLCRequest) (*model.OHLCSeries, error) {
	out, err := r.resolve(CapOHLCData, func(v Vendor) (any, error) {
		return v.(OHLCFetcher).FetchOHLC(ctx, symbol, req)
	})
	if err != nil {
		return nil, err
	}
	return out.(*model.OHLCSeries), nil
}

// MarketData fetches valuation-level market data for symbol.
func (r *Router) MarketData(ctx context.Context, symbol string) (*model.MarketData, error) {
	out, err := r.resolve(CapMarketData, func(v Vendor) (any, error) {
		return v.(MarketDataFetcher).FetchMarketData(ctx, symbol)
	})
	if err != nil {
		return nil, err
	}
	return out.(*model.MarketData), nil
}

// FinancialData fetches fundamental financial metrics for symbol.
func (r *Router) FinancialData(ctx context.Context, symbol string) (*model.FinancialData, error) {
	out, err := r.resolve(CapFinancialData, func(v Vendor) (any, error) {
		return v.(FinancialDataFetcher).FetchFinancialData(ctx, symbol)
	})
	if err != nil {
		return nil, err
	}
	return out.(*model.FinancialData), nil
}

// resolve walks the candidate order for cap and returns the first success.
// Candidates without a registered implementation are skipped; every failure
// is recorded as the last error and the next candidate is tried.
func (r *Router) resolve(cap Capability, call func(Vendor) (any, error)) (any, error) {
	if _, ok := categories[cap]; !ok {
		return nil, &UnsupportedCapabilityError{Capability: cap}
	}

	var lastErr error
	for _, name := range r.priority(cap) {
		v, ok := r.registry.Lookup(cap, name)
		if !ok {
			log.Printf("[INFO] vendor %s does not implement %s, skipping", name, cap)
			continue
		}
		out, err := call(v)
		if err != nil {
			lastErr = err
			log.Printf("[WARN] vendor %s failed %s: %v, trying next", name, cap, err)
			continue
		}
		return out, nil
	}
	return nil, &AllFailedError{Capability: cap, Last: lastErr}
}

// priority resolves the candidate vendor order for cap:
// capability-level tool_vendors override, then category-level data_vendors,
// then the fixed default order.
func (r *Router) priority(cap Capability) []string {
	cfg := r.store.Get()
	if s, ok := cfg.ToolVendors[string(cap)]; ok {
		return config.SplitList(s)
	}
	if s, ok := cfg.DataVendors[categories[cap]]; ok {
		return config.SplitList(s)
	}
	return defaultOrder
}
