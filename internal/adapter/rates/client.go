// Package rates converts fiat amounts to sats using an HTTP price oracle.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lnpos-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var satsPerBTC = decimal.NewFromInt(100_000_000)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.RateOracle. The oracle answers
// GET {base}/rates/{CODE} with {"price": <BTC price in CODE>}.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	cache      ports.RateCache
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewClient creates an oracle client. cache may be nil.
func NewClient(baseURL string, httpClient HTTPClient, cache ports.RateCache, cacheTTL time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

type rateResponse struct {
	Price decimal.Decimal `json:"price"`
}

// Convert returns the sats value of fiat major units of currency. The
// result is not rounded.
func (c *Client) Convert(ctx context.Context, fiat decimal.Decimal, currency string) (decimal.Decimal, error) {
	price, err := c.price(ctx, strings.ToUpper(currency))
	if err != nil {
		return decimal.Zero, err
	}
	return fiat.Mul(satsPerBTC).Div(price), nil
}

func (c *Client) price(ctx context.Context, code string) (decimal.Decimal, error) {
	// Layer 1: Redis cache (fast path).
	if c.cache != nil {
		price, ok, err := c.cache.Get(ctx, code)
		if err != nil {
			c.log.Warn().Err(err).Str("currency", code).Msg("rate cache read failed, falling through to oracle")
		} else if ok {
			return price, nil
		}
	}

	price, err := c.fetch(ctx, code)
	if err != nil {
		return decimal.Zero, err
	}

	if c.cache != nil && c.cacheTTL > 0 {
		if err := c.cache.Set(ctx, code, price, c.cacheTTL); err != nil {
			c.log.Warn().Err(err).Str("currency", code).Msg("rate cache write failed")
		}
	}
	return price, nil
}

func (c *Client) fetch(ctx context.Context, code string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rates/"+code, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: rate oracle: %v", ports.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return decimal.Zero, fmt.Errorf("%w: %s", ports.ErrRateUnavailable, code)
	case resp.StatusCode != http.StatusOK:
		return decimal.Zero, fmt.Errorf("%w: rate oracle status %d", ports.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decoding rate: %v", ports.ErrUpstreamUnavailable, err)
	}
	if !body.Price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s price %s", ports.ErrRateUnavailable, code, body.Price)
	}

	c.log.Debug().Str("currency", code).Str("price", body.Price.String()).Msg("fetched rate")
	return body.Price, nil
}
