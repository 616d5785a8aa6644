package recorder

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()

	err = r.RecordAnalysis(&AnalysisRecord{
		Symbol:       "AAPL",
		Kind:         KindTechnical,
		Vendor:       "finnhub",
		CurrentPrice: ptr(150.5),
		RSI:          ptr(75.3),
		// MACD left nil: too little history, must land as NULL.
		RSITrend: "overbought (possible pullback)",
		Report:   "report body",
	})
	require.NoError(t, err)

	var (
		symbol, kind, vendor, rsiTrend string
		price, rsi                     sql.NullFloat64
		macd                           sql.NullFloat64
	)
	row := r.db.QueryRow(`SELECT symbol, kind, vendor, current_price, rsi, macd, rsi_trend
		FROM analysis_reports WHERE symbol = ?`, "AAPL")
	require.NoError(t, row.Scan(&symbol, &kind, &vendor, &price, &rsi, &macd, &rsiTrend))

	require.Equal(t, "AAPL", symbol)
	require.Equal(t, KindTechnical, kind)
	require.Equal(t, "finnhub", vendor)
	require.True(t, price.Valid)
	require.Equal(t, 150.5, price.Float64)
	require.True(t, rsi.Valid)
	require.False(t, macd.Valid, "nil indicator must be stored as NULL")
	require.Equal(t, "overbought (possible pullback)", rsiTrend)
}

func TestSQLiteRecorder_MigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.RecordAnalysis(&AnalysisRecord{Symbol: "AAPL", Kind: KindFundamental}))
	require.NoError(t, r.Close())

	// Reopening runs migrations again and keeps existing rows.
	r, err = NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()

	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM analysis_reports`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestNoopRecorder(t *testing.T) {
	r := NewNoopRecorder()
	require.NoError(t, r.RecordAnalysis(&AnalysisRecord{Symbol: "AAPL"}))
	require.NoError(t, r.Close())
}
