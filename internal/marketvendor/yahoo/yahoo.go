package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"time"

	"MarketAnalyst/internal/model"
	"MarketAnalyst/internal/marketvendor"
)

const vendorName = "yahoo"

// resolutions maps vendor-agnostic resolution tokens to Yahoo chart
// intervals. Unknown tokens are passed through unchanged.
var resolutions = map[string]string{
	"1":  "1m",
	"5":  "5m",
	"15": "15m",
	"30": "30m",
	"60": "60m",
	"1D": "1d",
	"D":  "1d",
	"1W": "1wk",
	"W":  "1wk",
	"1M": "1mo",
	"M":  "1mo",
}

// Client fetches OHLC candles from the Yahoo Finance chart API. It serves
// the candle capability only; quotes and fundamentals go to other vendors.
type Client struct {
	BaseURL string
	client  *http.Client
}

// New creates a Yahoo Finance client with optional proxy support.
func New(proxyURL string, timeout time.Duration) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		BaseURL: "https://query1.finance.yahoo.com",
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (c *Client) Name() string { return vendorName }

// chartResponse is the response structure from the Yahoo chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []any `json:"open"`
					High   []any `json:"high"`
					Low    []any `json:"low"`
					Close  []any `json:"close"`
					Volume []any `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type bar struct {
	ts            int64
	o, h, l, c, v float64
}

// FetchOHLC returns candles for symbol. An explicit start+end range takes
// precedence over the bar count; otherwise a range wide enough for count
// bars is derived from the interval.
func (c *Client) FetchOHLC(ctx context.Context, symbol string, req model.OHLCRequest) (*model.OHLCSeries, error) {
	resolution := req.Resolution
	if resolution == "" {
		resolution = "1D"
	}
	interval := resolution
	if mapped, ok := resolutions[resolution]; ok {
		interval = mapped
	}
	count := req.Count
	if count <= 0 {
		count = 30
	}

	q := url.Values{"interval": {interval}}
	if req.Range() {
		q.Set("period1", fmt.Sprintf("%d", req.Start))
		q.Set("period2", fmt.Sprintf("%d", req.End))
	} else {
		q.Set("range", rangeFor(interval, count))
	}

	bars, err := c.fetchChart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	// Trim to the requested count from the newest end.
	if !req.Range() && len(bars) > count {
		bars = bars[len(bars)-count:]
	}

	series := &model.OHLCSeries{
		Symbol:     symbol,
		Resolution: resolution,
		Timestamps: make([]int64, len(bars)),
		Open:       make([]float64, len(bars)),
		High:       make([]float64, len(bars)),
		Low:        make([]float64, len(bars)),
		Close:      make([]float64, len(bars)),
		Volume:     make([]float64, len(bars)),
		Status:     model.StatusOK,
		Source:     vendorName,
	}
	if len(bars) == 0 {
		series.Status = model.StatusNoData
	}
	for i, b := range bars {
		series.Timestamps[i] = b.ts
		series.Open[i] = b.o
		series.High[i] = b.h
		series.Low[i] = b.l
		series.Close[i] = b.c
		series.Volume[i] = b.v
	}
	return series, nil
}

// rangeFor picks a chart range wide enough to cover count bars, padded for
// non-trading days.
func rangeFor(interval string, count int) string {
	switch interval {
	case "1m", "5m", "15m", "30m", "60m":
		return "5d"
	case "1wk":
		if count <= 26 {
			return "6mo"
		}
		if count <= 52 {
			return "1y"
		}
		return "2y"
	case "1mo":
		return "5y"
	default:
		if count <= 30 {
			return "1mo"
		}
		if count <= 90 {
			return "3mo"
		}
		if count <= 180 {
			return "6mo"
		}
		if count <= 365 {
			return "1y"
		}
		return "2y"
	}
}

func (c *Client) fetchChart(ctx context.Context, symbol string, query url.Values) ([]bar, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.BaseURL, url.PathEscape(symbol), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &vendor.Error{Vendor: vendorName, Kind: vendor.KindUnknown, Err: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		kind := vendor.KindConnectivity
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			kind = vendor.KindTimeout
		}
		return nil, &vendor.Error{Vendor: vendorName, Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &vendor.Error{Vendor: vendorName, Kind: vendor.KindConnectivity, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		kind := vendor.KindUnknown
		switch resp.StatusCode {
		case http.StatusNotFound:
			kind = vendor.KindNotFound
		case http.StatusTooManyRequests:
			kind = vendor.KindRateLimit
		}
		return nil, &vendor.Error{Vendor: vendorName, Kind: kind, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, &vendor.Error{Vendor: vendorName, Kind: vendor.KindUnknown, Err: fmt.Errorf("decode: %w", err)}
	}
	if chart.Chart.Error != nil {
		return nil, &vendor.Error{
			Vendor: vendorName,
			Kind:   vendor.KindNotFound,
			Err:    fmt.Errorf("api error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description),
		}
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, &vendor.Error{Vendor: vendorName, Kind: vendor.KindNotFound, Err: fmt.Errorf("no data for %s", symbol)}
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, &vendor.Error{Vendor: vendorName, Kind: vendor.KindUnknown, Err: fmt.Errorf("missing quote block for %s", symbol)}
	}
	quote := result.Indicators.Quote[0]

	bars := make([]bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := toFloat(at(quote.Open, i))
		h := toFloat(at(quote.High, i))
		l := toFloat(at(quote.Low, i))
		cl := toFloat(at(quote.Close, i))
		if o == 0 && h == 0 && l == 0 && cl == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, bar{ts: ts, o: o, h: h, l: l, c: cl, v: toFloat(at(quote.Volume, i))})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].ts < bars[j].ts })
	return bars, nil
}

func at(xs []any, i int) any {
	if i >= len(xs) {
		return nil
	}
	return xs[i]
}

func toFloat(v any) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
