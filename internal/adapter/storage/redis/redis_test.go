package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"lnpos-gateway/config"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisAddr(t *testing.T) {
	cfg := config.RedisConfig{
		Host: "redis.example.com",
		Port: 6380,
	}

	assert.Equal(t, "redis.example.com:6380", cfg.Addr())
}

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.RedisConfig{
		Host: "redis.local", Port: 6380, Password: "pw", DB: 3, PoolSize: 7, Timeout: 250 * time.Millisecond,
	})

	assert.Equal(t, "redis.local:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, "lnpos-gateway", opts.ClientName)
	assert.Equal(t, 250*time.Millisecond, opts.DialTimeout)
	assert.Equal(t, 250*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, 250*time.Millisecond, opts.WriteTimeout)
}

func TestClientOptions_ZeroTimeoutKeepsDefaults(t *testing.T) {
	opts := clientOptions(config.RedisConfig{Host: "localhost", Port: 6379})
	assert.Zero(t, opts.DialTimeout)
	assert.Zero(t, opts.ReadTimeout)
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: s.Host(), Port: mustPort(t, s.Port()), PoolSize: 2, Timeout: time.Second}

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	hc := NewHealthCheck(client, time.Second)
	assert.Equal(t, "redis", hc.Name())
	require.NoError(t, hc.Ping(context.Background()))
	assert.True(t, s.Exists(healthKey))
	assert.Positive(t, s.TTL(healthKey))
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: s.Host(), Port: mustPort(t, s.Port()), Timeout: 200 * time.Millisecond}
	s.Close()

	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfg.Addr())
}

func TestHealthCheck_Down(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr(), MaxRetries: -1})
	s.Close()

	assert.Error(t, NewHealthCheck(client, 200*time.Millisecond).Ping(context.Background()))
}

func TestHealthCheck_WriteRejected(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr(), MaxRetries: -1})
	defer client.Close()
	s.SetError("READONLY You can't write against a read only replica.")

	err := NewHealthCheck(client, time.Second).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health write")
}

func mustPort(t *testing.T, p string) int {
	t.Helper()
	n, err := strconv.Atoi(p)
	require.NoError(t, err)
	return n
}
