// Package stock looks up a current stock price for the finance digest.
// The lookup is strictly fail-soft: any error becomes a human-readable
// unavailability string, never a returned error.
package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const unavailable = "Stock price unavailable"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Lookup returns a display string like "INFY.NS: 1534.20" or the fixed
// unavailability text.
func (c *Client) Lookup(ctx context.Context, symbol string) string {
	if c.apiKey == "" || symbol == "" {
		return unavailable
	}

	params := url.Values{}
	params.Set("ticker", symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Warn("stock lookup failed", "symbol", symbol, "error", err)
		return unavailable
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("stock lookup failed", "symbol", symbol, "error", err)
		return unavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("stock lookup rejected", "symbol", symbol, "status", resp.Status)
		return unavailable
	}

	var parsed struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("stock lookup decode failed", "symbol", symbol, "error", err)
		return unavailable
	}

	return fmt.Sprintf("%s: %.2f", symbol, parsed.Price)
}
