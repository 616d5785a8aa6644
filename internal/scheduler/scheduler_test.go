package scheduler

import (
	"context"
	"strings"
	"testing"

	"MarketAnalyst/internal/analyst"
	"MarketAnalyst/internal/model"
	"MarketAnalyst/internal/recorder"

	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

type stubSource struct{}

func (stubSource) StockData(ctx context.Context, symbol string) (*model.Quote, error) {
	return &model.Quote{Symbol: symbol, Current: ptr(150), Source: "finnhub"}, nil
}

func (stubSource) OHLCData(ctx context.Context, symbol string, req model.OHLCRequest) (*model.OHLCSeries, error) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return &model.OHLCSeries{Symbol: symbol, Resolution: "1D", Close: closes, Status: model.StatusOK, Source: "yahoo"}, nil
}

func (stubSource) MarketData(ctx context.Context, symbol string) (*model.MarketData, error) {
	return &model.MarketData{Symbol: symbol, CurrentPrice: 150, PERatio: 28, Source: "finnhub"}, nil
}

func (stubSource) FinancialData(ctx context.Context, symbol string) (*model.FinancialData, error) {
	return &model.FinancialData{Symbol: symbol, RevenueGrowthYoY: 10, ROE: 20, Source: "finnhub"}, nil
}

type captureRecorder struct {
	records []*recorder.AnalysisRecord
}

func (c *captureRecorder) RecordAnalysis(rec *recorder.AnalysisRecord) error {
	c.records = append(c.records, rec)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func newTestScheduler(rec recorder.Recorder) *Scheduler {
	src := stubSource{}
	return NewScheduler(
		context.Background(),
		analyst.NewTechnical(src, nil),
		analyst.NewFundamental(src, nil),
		nil,
		rec,
		[]string{"AAPL", "MSFT"},
	)
}

func TestHandleCommand_Technical(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestScheduler(rec)

	reply := s.HandleCommand(context.Background(), "/tech nvda")
	require.Contains(t, reply, "NVDA")
	require.Contains(t, reply, "Technical analysis")

	require.Len(t, rec.records, 1)
	require.Equal(t, "NVDA", rec.records[0].Symbol)
	require.Equal(t, recorder.KindTechnical, rec.records[0].Kind)
	require.Equal(t, "finnhub", rec.records[0].Vendor)
	require.NotNil(t, rec.records[0].RSI)
}

func TestHandleCommand_DefaultSymbol(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestScheduler(rec)

	reply := s.HandleCommand(context.Background(), "/tech")
	require.Contains(t, reply, "AAPL")
}

func TestHandleCommand_Fundamental(t *testing.T) {
	rec := &captureRecorder{}
	s := newTestScheduler(rec)

	reply := s.HandleCommand(context.Background(), "/fund AAPL")
	require.Contains(t, reply, "Fundamental analysis")
	require.Len(t, rec.records, 1)
	require.Equal(t, recorder.KindFundamental, rec.records[0].Kind)
}

func TestHandleCommand_Symbols(t *testing.T) {
	s := newTestScheduler(&captureRecorder{})
	reply := s.HandleCommand(context.Background(), "/symbols")
	require.Contains(t, reply, "AAPL, MSFT")
}

func TestHandleCommand_Unknown(t *testing.T) {
	s := newTestScheduler(&captureRecorder{})
	for _, cmd := range []string{"", "/nope", "hello"} {
		reply := s.HandleCommand(context.Background(), cmd)
		require.True(t, strings.Contains(reply, "commands:"), "command %q should return usage", cmd)
	}
}

func TestRegisterAll_BadCron(t *testing.T) {
	s := newTestScheduler(&captureRecorder{})
	require.Error(t, s.RegisterAll("not a cron expr"))
	require.NoError(t, s.RegisterAll("0 0 18 * * 1-5"))
}
