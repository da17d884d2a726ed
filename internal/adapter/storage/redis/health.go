package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const healthKey = "lnpos:health"

// HealthCheck implements ports.HealthChecker for Redis. A read-only replica
// answers PING but cannot reserve nonces, so the check writes a short-lived
// key as well.
type HealthCheck struct {
	client  goredis.UniversalClient
	timeout time.Duration
}

// NewHealthCheck creates a Redis health checker. timeout <= 0 leaves the
// caller's deadline in charge.
func NewHealthCheck(client goredis.UniversalClient, timeout time.Duration) *HealthCheck {
	return &HealthCheck{client: client, timeout: timeout}
}

// Ping checks that Redis accepts writes.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := h.client.Set(ctx, healthKey, time.Now().Unix(), 10*time.Second).Err(); err != nil {
		return fmt.Errorf("health write: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "redis"
}
