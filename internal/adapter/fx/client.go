package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/apexbank/apexbank-api/internal/logger"
	"github.com/shopspring/decimal"
)

// Provider resolves a live exchange rate between two currency codes.
type Provider interface {
	FetchRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

// Client talks to a freecurrencyapi-compatible rate endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type latestRatesResponse struct {
	Data map[string]decimal.Decimal `json:"data"`
}

func (c *Client) FetchRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse rate provider url: %w", err)
	}

	query := endpoint.Query()
	query.Set("apikey", c.apiKey)
	query.Set("base_currency", fromCurrency)
	query.Set("currencies", toCurrency)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("build rate provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("call rate provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("fx client unexpected provider status", nil, logger.Fields{
			"status":       resp.StatusCode,
			"fromCurrency": fromCurrency,
			"toCurrency":   toCurrency,
		})
		return decimal.Decimal{}, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Decimal{}, fmt.Errorf("decode rate provider response: %w", err)
	}

	rate, ok := payload.Data[toCurrency]
	if !ok || rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("rate provider has no rate for %s", PairKey(fromCurrency, toCurrency))
	}

	return rate, nil
}
