package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func oracle(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/rates/EUR", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestClient_Convert(t *testing.T) {
	srv, _ := oracle(t, http.StatusOK, `{"price":"50000"}`)
	c := NewClient(srv.URL+"/", srv.Client(), nil, 0, zerolog.Nop())

	sats, err := c.Convert(context.Background(), decimal.RequireFromString("5.00"), "eur")
	require.NoError(t, err)
	assert.Equal(t, "10000", sats.String())
}

func TestClient_Convert_NumericPrice(t *testing.T) {
	srv, _ := oracle(t, http.StatusOK, `{"price":40000}`)
	c := NewClient(srv.URL, srv.Client(), nil, 0, zerolog.Nop())

	sats, err := c.Convert(context.Background(), decimal.NewFromInt(1), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "2500", sats.String())
}

func TestClient_Convert_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unknown currency", http.StatusNotFound, `{}`, ports.ErrRateUnavailable},
		{"zero price", http.StatusOK, `{"price":"0"}`, ports.ErrRateUnavailable},
		{"server error", http.StatusBadGateway, ``, ports.ErrUpstreamUnavailable},
		{"garbage", http.StatusOK, `<html>`, ports.ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := oracle(t, tt.status, tt.body)
			c := NewClient(srv.URL, srv.Client(), nil, 0, zerolog.Nop())

			_, err := c.Convert(context.Background(), decimal.NewFromInt(1), "EUR")
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestClient_Convert_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, http.DefaultClient, nil, 0, zerolog.Nop())
	_, err := c.Convert(context.Background(), decimal.NewFromInt(1), "EUR")
	assert.ErrorIs(t, err, ports.ErrUpstreamUnavailable)
}

func TestClient_Convert_UsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockRateCache(ctrl)
	srv, calls := oracle(t, http.StatusOK, `{"price":"50000"}`)
	c := NewClient(srv.URL, srv.Client(), cache, time.Minute, zerolog.Nop())

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), "EUR").Return(decimal.Zero, false, nil),
		cache.EXPECT().Set(gomock.Any(), "EUR", gomock.Any(), time.Minute).Return(nil),
		cache.EXPECT().Get(gomock.Any(), "EUR").Return(decimal.NewFromInt(50000), true, nil),
	)

	for i := 0; i < 2; i++ {
		sats, err := c.Convert(context.Background(), decimal.NewFromInt(1), "EUR")
		require.NoError(t, err)
		assert.Equal(t, "2000", sats.String())
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestClient_Convert_CacheDownFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockRateCache(ctrl)
	srv, _ := oracle(t, http.StatusOK, `{"price":"50000"}`)
	c := NewClient(srv.URL, srv.Client(), cache, time.Minute, zerolog.Nop())

	cache.EXPECT().Get(gomock.Any(), "EUR").Return(decimal.Zero, false, errors.New("redis down"))
	cache.EXPECT().Set(gomock.Any(), "EUR", gomock.Any(), time.Minute).Return(errors.New("redis down"))

	_, err := c.Convert(context.Background(), decimal.NewFromInt(1), "EUR")
	assert.NoError(t, err)
}
