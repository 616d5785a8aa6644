package vendor

import "sort"

// Registry maps each capability to the vendor implementations able to
// serve it. The capability set itself is fixed; registering a vendor only
// fills in implementations.
type Registry struct {
	byCap map[Capability]map[string]Vendor
}

// NewRegistry creates a registry and registers the given vendors.
func NewRegistry(vendors ...Vendor) *Registry {
	r := &Registry{byCap: make(map[Capability]map[string]Vendor)}
	for _, v := range vendors {
		r.Register(v)
	}
	return r
}

// Register records v under every capability its type implements.
func (r *Registry) Register(v Vendor) {
	if _, ok := v.(QuoteFetcher); ok {
		r.add(CapStockData, v)
	}
	if _, ok := v.(OHLCFetcher); ok {
		r.add(CapOHLCData, v)
	}
	if _, ok := v.(MarketDataFetcher); ok {
		r.add(CapMarketData, v)
	}
	if _, ok := v.(FinancialDataFetcher); ok {
		r.add(CapFinancialData, v)
	}
}

func (r *Registry) add(cap Capability, v Vendor) {
	if r.byCap[cap] == nil {
		r.byCap[cap] = make(map[string]Vendor)
	}
	r.byCap[cap][v.Name()] = v
}

// Lookup returns the implementation a vendor registered for cap, if any.
func (r *Registry) Lookup(cap Capability, name string) (Vendor, bool) {
	v, ok := r.byCap[cap][name]
	return v, ok
}

// Vendors returns the sorted vendor names registered for cap.
func (r *Registry) Vendors(cap Capability) []string {
	names := make([]string, 0, len(r.byCap[cap]))
	for name := range r.byCap[cap] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
