package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/market"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
)

const serviceName = "market data provider"

// Client fetches time-series quotes from an Alpha Vantage compatible API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.MarketData.BaseURL,
		apiKey:  cfg.MarketData.APIKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) FetchTimeSeries(ctx context.Context, symbol string, interval market.Interval, outputSize market.OutputSize) (*market.TimeSeries, error) {
	endpoint, err := c.buildURL(symbol, interval, outputSize)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, appErrors.NewExternalServiceError(serviceName, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}

	series, err := parseResponse(symbol, interval, body)
	if err != nil {
		return nil, appErrors.NewExternalServiceError(serviceName, err)
	}

	logger.Debug().
		Str("symbol", symbol).
		Int("points", len(series.Data)).
		Msg("market data fetched")

	return series, nil
}

func (c *Client) buildURL(symbol string, interval market.Interval, outputSize market.OutputSize) (string, error) {
	function := "TIME_SERIES_DAILY"
	switch interval {
	case market.IntervalWeekly:
		function = "TIME_SERIES_WEEKLY"
	case market.IntervalMonthly:
		function = "TIME_SERIES_MONTHLY"
	}

	u, err := url.Parse(c.baseURL + "/query")
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("function", function)
	q.Set("symbol", symbol)
	q.Set("outputsize", string(outputSize))
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type apiResponse struct {
	ErrorMessage string            `json:"Error Message"`
	Note         string            `json:"Note"`
	MetaData     map[string]string `json:"Meta Data"`

	Daily   map[string]apiBar `json:"Time Series (Daily)"`
	Weekly  map[string]apiBar `json:"Weekly Time Series"`
	Monthly map[string]apiBar `json:"Monthly Time Series"`
}

type apiBar struct {
	Close string `json:"4. close"`
}

func parseResponse(symbol string, interval market.Interval, body []byte) (*market.TimeSeries, error) {
	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if parsed.ErrorMessage != "" {
		return nil, fmt.Errorf("provider error: %s", parsed.ErrorMessage)
	}
	if parsed.Note != "" {
		return nil, fmt.Errorf("provider throttled: %s", parsed.Note)
	}

	bars := parsed.Daily
	switch interval {
	case market.IntervalWeekly:
		bars = parsed.Weekly
	case market.IntervalMonthly:
		bars = parsed.Monthly
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no time series data for %s", symbol)
	}

	dates := make([]string, 0, len(bars))
	for date := range bars {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]market.PricePoint, 0, len(dates))
	for _, date := range dates {
		value, err := strconv.ParseFloat(bars[date].Close, 64)
		if err != nil {
			continue
		}
		points = append(points, market.PricePoint{Date: date, Value: value})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no parsable price points for %s", symbol)
	}

	series := &market.TimeSeries{
		Metadata: market.Metadata{
			Symbol:        metaValue(parsed.MetaData, "2. Symbol", symbol),
			Name:          metaValue(parsed.MetaData, "2. Symbol", symbol),
			LastRefreshed: metaValue(parsed.MetaData, "3. Last Refreshed", points[len(points)-1].Date),
			TimeZone:      metaValue(parsed.MetaData, "5. Time Zone", "US/Eastern"),
		},
		Data: points,
	}

	first := points[0].Value
	last := points[len(points)-1].Value
	if first != 0 {
		series.ChangePercent = (last - first) / first * 100
	}

	return series, nil
}

func metaValue(meta map[string]string, key, fallback string) string {
	if v, ok := meta[key]; ok && v != "" {
		return v
	}
	return fallback
}
