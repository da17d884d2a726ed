// Package obs holds the Prometheus collectors exported on /metrics.
package obs

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics groups Prometheus collectors for HTTP observability.
type HTTPMetrics struct {
	ReqTotal *prometheus.CounterVec
	ReqDur   *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewHTTPMetrics registers and returns HTTP metrics collectors.
func NewHTTPMetrics(namespace string, reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &HTTPMetrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency distribution in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
	}
	mustRegisterCollector(reg, m.ReqTotal, func(c prometheus.Collector) {
		if v, ok := c.(*prometheus.CounterVec); ok {
			m.ReqTotal = v
		}
	})
	mustRegisterCollector(reg, m.ReqDur, func(c prometheus.Collector) {
		if v, ok := c.(*prometheus.HistogramVec); ok {
			m.ReqDur = v
		}
	})
	mustRegisterCollector(reg, m.InFlight, func(c prometheus.Collector) {
		if v, ok := c.(prometheus.Gauge); ok {
			m.InFlight = v
		}
	})
	return m
}

// LnurlMetrics counts protocol outcomes. A nil *LnurlMetrics is valid and
// records nothing.
type LnurlMetrics struct {
	Quotes    *prometheus.CounterVec
	Invoices  *prometheus.CounterVec
	Withdraws *prometheus.CounterVec
}

// NewLnurlMetrics registers and returns the LNURL collectors.
func NewLnurlMetrics(namespace string, reg prometheus.Registerer) *LnurlMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &LnurlMetrics{
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lnurl_quotes_total",
			Help:      "Quote requests by payload scheme and outcome.",
		}, []string{"scheme", "outcome"}),
		Invoices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lnurl_invoices_total",
			Help:      "Callback invoice issuance by outcome.",
		}, []string{"outcome"}),
		Withdraws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lnurl_withdraws_total",
			Help:      "ATM payouts by method and outcome.",
		}, []string{"method", "outcome"}),
	}
	for _, cv := range []**prometheus.CounterVec{&m.Quotes, &m.Invoices, &m.Withdraws} {
		target := cv
		mustRegisterCollector(reg, *target, func(c prometheus.Collector) {
			if v, ok := c.(*prometheus.CounterVec); ok {
				*target = v
			}
		})
	}
	return m
}

// ObserveQuote counts one quote attempt.
func (m *LnurlMetrics) ObserveQuote(scheme, outcome string) {
	if m == nil {
		return
	}
	m.Quotes.WithLabelValues(scheme, outcome).Inc()
}

// ObserveInvoice counts one callback.
func (m *LnurlMetrics) ObserveInvoice(outcome string) {
	if m == nil {
		return
	}
	m.Invoices.WithLabelValues(outcome).Inc()
}

// ObserveWithdraw counts one payout attempt.
func (m *LnurlMetrics) ObserveWithdraw(method, outcome string) {
	if m == nil {
		return
	}
	m.Withdraws.WithLabelValues(method, outcome).Inc()
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register metric: %w", err))
	}
}
