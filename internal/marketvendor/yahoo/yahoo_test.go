package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"MarketAnalyst/internal/model"
	"MarketAnalyst/internal/marketvendor"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("", 5*time.Second)
	c.BaseURL = srv.URL
	return c
}

const chartBody = `{"chart":{"result":[{
	"timestamp":[300,100,200,400],
	"indicators":{"quote":[{
		"open":[12,10,11,null],
		"high":[13,11,12,null],
		"low":[11,9,10,null],
		"close":[12.5,10.5,11.5,null],
		"volume":[300,100,200,null]
	}]}
}],"error":null}}`

func TestFetchOHLC_ParsesAndSortsChart(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(chartBody))
	}))

	series, err := c.FetchOHLC(context.Background(), "AAPL", model.OHLCRequest{})
	require.NoError(t, err)
	require.Equal(t, "/v8/finance/chart/AAPL", gotPath)
	require.Equal(t, "1d", gotQuery.Get("interval"))
	require.Equal(t, "1mo", gotQuery.Get("range"))

	// The all-null bar at ts 400 is dropped, the rest come back ascending.
	require.Equal(t, []int64{100, 200, 300}, series.Timestamps)
	require.Equal(t, []float64{10.5, 11.5, 12.5}, series.Close)
	require.Equal(t, model.StatusOK, series.Status)
	require.Equal(t, "yahoo", series.Source)
	require.Equal(t, "1D", series.Resolution)
}

func TestFetchOHLC_TrimsToCount(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartBody))
	}))

	series, err := c.FetchOHLC(context.Background(), "AAPL", model.OHLCRequest{Count: 2})
	require.NoError(t, err)
	require.Equal(t, []int64{200, 300}, series.Timestamps)
	require.Equal(t, []float64{11.5, 12.5}, series.Close)
}

func TestFetchOHLC_RangeQuery(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(chartBody))
	}))

	_, err := c.FetchOHLC(context.Background(), "AAPL", model.OHLCRequest{Start: 1690000000, End: 1700000000})
	require.NoError(t, err)
	require.Equal(t, "1690000000", gotQuery.Get("period1"))
	require.Equal(t, "1700000000", gotQuery.Get("period2"))
	require.Empty(t, gotQuery.Get("range"))
}

func TestFetchOHLC_ResolutionMapping(t *testing.T) {
	tests := []struct {
		resolution string
		interval   string
	}{
		{"1D", "1d"},
		{"D", "1d"},
		{"60", "60m"},
		{"1W", "1wk"},
		{"M", "1mo"},
		{"2h", "2h"}, // unknown token passes through
	}
	for _, tt := range tests {
		var gotQuery url.Values
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(chartBody))
		}))
		_, err := c.FetchOHLC(context.Background(), "AAPL", model.OHLCRequest{Resolution: tt.resolution})
		require.NoError(t, err)
		require.Equal(t, tt.interval, gotQuery.Get("interval"), "resolution %s", tt.resolution)
	}
}

func TestFetchOHLC_APIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))

	_, err := c.FetchOHLC(context.Background(), "NOPE", model.OHLCRequest{})
	var verr *vendor.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, vendor.KindNotFound, verr.Kind)
	require.Equal(t, "yahoo", verr.Vendor)
}

func TestFetchOHLC_EmptyResult(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{}]}}],"error":null}}`))
	}))

	_, err := c.FetchOHLC(context.Background(), "AAPL", model.OHLCRequest{})
	var verr *vendor.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, vendor.KindNotFound, verr.Kind)
}

func TestFetchOHLC_RateLimited(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := c.FetchOHLC(context.Background(), "AAPL", model.OHLCRequest{})
	var verr *vendor.Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, vendor.KindRateLimit, verr.Kind)
}

func TestRangeFor(t *testing.T) {
	tests := []struct {
		interval string
		count    int
		want     string
	}{
		{"1d", 30, "1mo"},
		{"1d", 90, "3mo"},
		{"1d", 200, "1y"},
		{"5m", 100, "5d"},
		{"1wk", 20, "6mo"},
		{"1mo", 60, "5y"},
	}
	for _, tt := range tests {
		if got := rangeFor(tt.interval, tt.count); got != tt.want {
			t.Errorf("rangeFor(%q, %d) = %q, want %q", tt.interval, tt.count, got, tt.want)
		}
	}
}
