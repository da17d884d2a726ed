package obs

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLnurlMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLnurlMetrics("test", reg)

	m.ObserveQuote("xor-hmac", "ok")
	m.ObserveQuote("xor-hmac", "ok")
	m.ObserveQuote("aes-cbc-hex", "LNP_003")
	m.ObserveInvoice("ok")
	m.ObserveWithdraw("bolt11", "failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Quotes.WithLabelValues("xor-hmac", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Quotes.WithLabelValues("aes-cbc-hex", "LNP_003")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invoices.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Withdraws.WithLabelValues("bolt11", "failed")))
}

func TestLnurlMetrics_NilIsNoop(t *testing.T) {
	var m *LnurlMetrics
	assert.NotPanics(t, func() {
		m.ObserveQuote("x", "y")
		m.ObserveInvoice("ok")
		m.ObserveWithdraw("a", "b")
	})
}

func TestNewHTTPMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewHTTPMetrics("test", reg)
	second := NewHTTPMetrics("test", reg)

	first.ReqTotal.WithLabelValues("GET", "/health", "200").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(second.ReqTotal.WithLabelValues("GET", "/health", "200")))
}

func TestDurationMillis(t *testing.T) {
	assert.Equal(t, 1500.0, DurationMillis(1500*time.Millisecond))
}
