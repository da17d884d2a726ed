package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lnpos-gateway/internal/adapter/http/middleware"
	redisStore "lnpos-gateway/internal/adapter/storage/redis"
	"lnpos-gateway/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func setupRateLimitRouter(store *redisStore.RateLimitStore, group string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	// Lets tests act as an authenticated caller.
	r.Use(func(c *gin.Context) {
		if sub := c.GetHeader("X-Test-Subject"); sub != "" {
			c.Set(middleware.CtxCaller, ports.Caller{Subject: sub})
		}
		c.Next()
	})
	r.GET("/test", middleware.RateLimiter(store, group, rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func doGet(router *gin.Engine, subject string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	if subject != "" {
		req.Header.Set("X-Test-Subject", subject)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t), middleware.GroupAdmin)

	for i := 0; i < 3; i++ {
		w := doGet(router, "")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newStore(t), middleware.GroupAdmin)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doGet(router, "").Code)
	}

	w := doGet(router, "")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_LnurlGroupAnswersWithEnvelope(t *testing.T) {
	router := setupRateLimitRouter(newStore(t), middleware.GroupLnurl)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doGet(router, "").Code)
	}

	w := doGet(router, "")
	assert.Equal(t, 200, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ERROR", body["status"])
	assert.Equal(t, "Rate limit exceeded", body["reason"])
}

func TestRateLimiter_KeysByCallerSubject(t *testing.T) {
	router := setupRateLimitRouter(newStore(t), middleware.GroupAdmin)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doGet(router, "alice").Code)
	}
	assert.Equal(t, 429, doGet(router, "alice").Code)

	// Independent counter for another subject.
	assert.Equal(t, 200, doGet(router, "bob").Code)
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()
	router := setupRateLimitRouter(redisStore.NewRateLimitStore(client), middleware.GroupPin)

	mr.Close()
	assert.Equal(t, 200, doGet(router, "").Code)
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules(0, 0)
	assert.Equal(t, int64(60), rules[middleware.GroupLnurl].Limit)
	assert.Equal(t, int64(30), rules[middleware.GroupPin].Limit)
	assert.Equal(t, int64(120), rules[middleware.GroupAdmin].Limit)

	rules = middleware.DefaultRateLimitRules(10, 30*time.Second)
	assert.Equal(t, int64(10), rules[middleware.GroupLnurl].Limit)
	assert.Equal(t, 30*time.Second, rules[middleware.GroupLnurl].Window)
}
