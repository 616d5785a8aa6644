package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"MarketAnalyst/internal/model"
	"MarketAnalyst/internal/marketvendor"
)

const vendorName = "finnhub"

// Client implements all four capabilities against the Finnhub REST API.
type Client struct {
	BaseURL string
	apiKey  string
	client  *http.Client
}

// New creates a Finnhub client with optional proxy support. The API key is
// required and validated here, before any network call is attempted.
func New(apiKey, proxyURL string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, &vendor.ConfigurationError{Vendor: vendorName, Option: "finnhub_api_key"}
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		BaseURL: "https://finnhub.io/api/v1",
		apiKey:  apiKey,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

func (c *Client) Name() string { return vendorName }

type quoteResponse struct {
	Current       *float64 `json:"c"`
	Change        *float64 `json:"d"`
	ChangePercent *float64 `json:"dp"`
	High          *float64 `json:"h"`
	Low           *float64 `json:"l"`
	Open          *float64 `json:"o"`
	PrevClose     *float64 `json:"pc"`
	Timestamp     *int64   `json:"t"`
	Volume        *float64 `json:"v"`
}

// FetchQuote returns the real-time quote for symbol. Fields Finnhub omits
// stay nil in the normalized quote.
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	var raw quoteResponse
	if err := c.getJSON(ctx, "/quote", url.Values{"symbol": {symbol}}, &raw); err != nil {
		return nil, err
	}
	return &model.Quote{
		Symbol:        symbol,
		Current:       raw.Current,
		Open:          raw.Open,
		High:          raw.High,
		Low:           raw.Low,
		PrevClose:     raw.PrevClose,
		Change:        raw.Change,
		ChangePercent: raw.ChangePercent,
		Volume:        raw.Volume,
		Timestamp:     raw.Timestamp,
		Source:        vendorName,
	}, nil
}

type candleResponse struct {
	Timestamps []int64   `json:"t"`
	Open       []float64 `json:"o"`
	High       []float64 `json:"h"`
	Low        []float64 `json:"l"`
	Close      []float64 `json:"c"`
	Volume     []float64 `json:"v"`
	Status     string    `json:"s"`
}

// FetchOHLC returns a candle series. An explicit start+end range takes
// precedence over the bar count.
func (c *Client) FetchOHLC(ctx context.Context, symbol string, req model.OHLCRequest) (*model.OHLCSeries, error) {
	resolution := req.Resolution
	if resolution == "" {
		resolution = "1D"
	}
	count := req.Count
	if count <= 0 {
		count = 30
	}

	q := url.Values{
		"symbol":     {symbol},
		"resolution": {resolution},
	}
	if req.Range() {
		q.Set("from", strconv.FormatInt(req.Start, 10))
		q.Set("to", strconv.FormatInt(req.End, 10))
	} else {
		q.Set("count", strconv.Itoa(count))
	}

	var raw candleResponse
	if err := c.getJSON(ctx, "/stock/candle", q, &raw); err != nil {
		return nil, err
	}
	return &model.OHLCSeries{
		Symbol:     symbol,
		Resolution: resolution,
		Timestamps: raw.Timestamps,
		Open:       raw.Open,
		High:       raw.High,
		Low:        raw.Low,
		Close:      raw.Close,
		Volume:     raw.Volume,
		Status:     raw.Status,
		Source:     vendorName,
	}, nil
}

type profileResponse struct {
	MarketCapitalization float64 `json:"marketCapitalization"`
}

type metricResponse struct {
	Metric struct {
		PEBasic            float64 `json:"peBasic"`
		PB                 float64 `json:"pb"`
		Revenue            float64 `json:"revenue"`
		NetIncome          float64 `json:"netIncome"`
		RevenueGrowthYoY   float64 `json:"revenueGrowthYoY"`
		NetIncomeGrowthYoY float64 `json:"netIncomeGrowthYoY"`
		ROE                float64 `json:"roe"`
		DebtToEquity       float64 `json:"debtToEquity"`
	} `json:"metric"`
}

// FetchMarketData composes quote, company profile, and valuation metrics
// into one market data snapshot.
func (c *Client) FetchMarketData(ctx context.Context, symbol string) (*model.MarketData, error) {
	var quote struct {
		Current   float64 `json:"c"`
		Open      float64 `json:"o"`
		High      float64 `json:"h"`
		Low       float64 `json:"l"`
		Timestamp int64   `json:"t"`
	}
	if err := c.getJSON(ctx, "/quote", url.Values{"symbol": {symbol}}, &quote); err != nil {
		return nil, err
	}
	var profile profileResponse
	if err := c.getJSON(ctx, "/stock/profile2", url.Values{"symbol": {symbol}}, &profile); err != nil {
		return nil, err
	}
	var metric metricResponse
	if err := c.getJSON(ctx, "/stock/metric", url.Values{"symbol": {symbol}, "metric": {"all"}}, &metric); err != nil {
		return nil, err
	}
	return &model.MarketData{
		Symbol:       symbol,
		CurrentPrice: quote.Current,
		OpenPrice:    quote.Open,
		HighPrice:    quote.High,
		LowPrice:     quote.Low,
		MarketCap:    profile.MarketCapitalization,
		PERatio:      metric.Metric.PEBasic,
		PBRatio:      metric.Metric.PB,
		Source:       vendorName,
		Timestamp:    quote.Timestamp,
	}, nil
}

// FetchFinancialData returns fundamental financial metrics for symbol.
func (c *Client) FetchFinancialData(ctx context.Context, symbol string) (*model.FinancialData, error) {
	var metric metricResponse
	if err := c.getJSON(ctx, "/stock/metric", url.Values{"symbol": {symbol}, "metric": {"all"}}, &metric); err != nil {
		return nil, err
	}
	m := metric.Metric
	return &model.FinancialData{
		Symbol:           symbol,
		TotalRevenue:     m.Revenue,
		NetProfit:        m.NetIncome,
		RevenueGrowthYoY: m.RevenueGrowthYoY,
		ProfitGrowthYoY:  m.NetIncomeGrowthYoY,
		ROE:              m.ROE,
		DebtToEquity:     m.DebtToEquity,
		Source:           vendorName,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	query.Set("token", c.apiKey)
	endpoint := c.BaseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &vendor.Error{Vendor: vendorName, Kind: vendor.KindUnknown, Err: err}
	}
	req.Header.Set("User-Agent", "MarketAnalyst/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &vendor.Error{
			Vendor: vendorName,
			Kind:   kindForStatus(resp.StatusCode),
			Err:    fmt.Errorf("status %d: %s", resp.StatusCode, body),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &vendor.Error{Vendor: vendorName, Kind: vendor.KindUnknown, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

func kindForStatus(code int) vendor.Kind {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return vendor.KindAuth
	case http.StatusTooManyRequests:
		return vendor.KindRateLimit
	case http.StatusNotFound:
		return vendor.KindNotFound
	}
	return vendor.KindUnknown
}

func classify(err error) error {
	kind := vendor.KindConnectivity
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		kind = vendor.KindTimeout
	}
	return &vendor.Error{Vendor: vendorName, Kind: kind, Err: err}
}
