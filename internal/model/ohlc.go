package model

// OHLC series status flags.
const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
)

// OHLCSeries is the normalized candle series shape returned by all vendors.
// The five price/volume slices are parallel to Timestamps and share its
// length. Bars are chronological ascending (oldest first); callers that
// depend on order should still check timestamps, since a misbehaving vendor
// may violate it.
type OHLCSeries struct {
	Symbol     string    `json:"symbol"`
	Resolution string    `json:"resolution"`
	Timestamps []int64   `json:"t"`
	Open       []float64 `json:"o"`
	High       []float64 `json:"h"`
	Low        []float64 `json:"l"`
	Close      []float64 `json:"c"`
	Volume     []float64 `json:"v"`
	Status     string    `json:"s"`
	Source     string    `json:"source"`
}

// Len returns the number of bars in the series.
func (s *OHLCSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Timestamps)
}

// OHLCRequest describes a candle fetch. If both Start and End are set they
// take precedence over Count.
type OHLCRequest struct {
	Resolution string // vendor-agnostic token: 1, 5, 15, 30, 60, 1D, W, M
	Count      int
	Start      int64 // epoch seconds, optional
	End        int64 // epoch seconds, optional
}

// Range reports whether the request carries an explicit time range.
func (r OHLCRequest) Range() bool {
	return r.Start != 0 && r.End != 0
}
