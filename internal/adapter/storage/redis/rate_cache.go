package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RateCache implements ports.RateCache using Redis. Prices are stored as
// decimal strings.
type RateCache struct {
	client *goredis.Client
	prefix string
}

// NewRateCache creates a new Redis-backed rate cache.
func NewRateCache(client *goredis.Client) *RateCache {
	return &RateCache{
		client: client,
		prefix: "lnpos:rate:",
	}
}

// Get retrieves the cached BTC price for currency.
// Returns false if nothing is cached.
func (c *RateCache) Get(ctx context.Context, currency string) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, c.key(currency)).Result()
	if err != nil {
		if err == goredis.Nil {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("redis rate get: %w", err)
	}
	price, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("redis rate parse %q: %w", val, err)
	}
	return price, true, nil
}

// Set stores the BTC price for currency with TTL.
func (c *RateCache) Set(ctx context.Context, currency string, price decimal.Decimal, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(currency), price.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis rate set: %w", err)
	}
	return nil
}

func (c *RateCache) key(currency string) string {
	return c.prefix + strings.ToUpper(currency)
}
