package recorder

// Report kinds.
const (
	KindTechnical   = "technical"
	KindFundamental = "fundamental"
)

// AnalysisRecord holds one generated analysis report. Nil pointer fields
// are stored as NULL: an indicator that could not be computed stays absent
// rather than defaulting to zero.
type AnalysisRecord struct {
	Symbol         string
	Kind           string // technical or fundamental
	Vendor         string // data source that served the underlying request
	CurrentPrice   *float64
	RSI            *float64
	MACD           *float64
	MACDSignal     *float64
	BollingerUpper *float64
	BollingerLower *float64
	RSITrend       string
	MACDTrend      string
	BollingerTrend string
	Report         string
}

// Recorder persists generated analysis reports.
type Recorder interface {
	RecordAnalysis(rec *AnalysisRecord) error
	Close() error
}
