// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by the HTTP layer and the scheduler.
type Recorder interface {
	RecordRequest(method, route string, statusCode int, duration time.Duration)
	RecordLogin(success bool)
	RecordRegistration()
	SetStoreSize(accounts, entries int64)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	requests        *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	logins          *prometheus.CounterVec
	registrations   prometheus.Counter
	accountsTotal   prometheus.Gauge
	vocabularyTotal prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vocab_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vocab_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vocab_auth_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vocab_auth_registrations_total",
			Help: "Accounts registered since start-up",
		}),
		accountsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vocab_accounts",
			Help: "Accounts in the credential store",
		}),
		vocabularyTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vocab_entries",
			Help: "Entries in the vocabulary store",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.requestLatency,
		c.logins,
		c.registrations,
		c.accountsTotal,
		c.vocabularyTotal,
	)

	return c
}

func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.requestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// SetStoreSize sets the store-size gauges.
func (c *Collector) SetStoreSize(accounts, entries int64) {
	c.accountsTotal.Set(float64(accounts))
	c.vocabularyTotal.Set(float64(entries))
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordLogin(bool)                                 {}
func (Nop) RecordRegistration()                              {}
func (Nop) SetStoreSize(int64, int64)                        {}
