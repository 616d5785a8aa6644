package model

// Quote is the normalized real-time quote shape returned by all vendors.
// Numeric fields are pointers because vendors may omit any of them;
// callers must tolerate partial data.
type Quote struct {
	Symbol        string   `json:"symbol"`
	Current       *float64 `json:"current_price"`
	Open          *float64 `json:"open_price"`
	High          *float64 `json:"high_price"`
	Low           *float64 `json:"low_price"`
	PrevClose     *float64 `json:"prev_close"`
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"change_percent"`
	Volume        *float64 `json:"volume"`
	Timestamp     *int64   `json:"timestamp"` // seconds since epoch
	Source        string   `json:"source"`
}
