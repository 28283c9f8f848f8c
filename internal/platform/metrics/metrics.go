// Package metrics exposes HTTP and stock-ledger counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	borrows     *prometheus.CounterVec
	returns     *prometheus.CounterVec
	loanDeletes *prometheus.CounterVec
	exports     *prometheus.CounterVec
}

// New builds a private registry so tests can create as many as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventaris",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "inventaris",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		borrows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventaris",
			Name:      "ledger_borrows_total",
			Help:      "Loans created, by item kind and whether an item matched.",
		}, []string{"jenis", "matched"}),
		returns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventaris",
			Name:      "ledger_returns_total",
			Help:      "Loans marked as returned.",
		}, []string{"jenis"}),
		loanDeletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventaris",
			Name:      "ledger_loan_deletes_total",
			Help:      "Loans deleted, by whether stock was given back.",
		}, []string{"jenis", "restored"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "inventaris",
			Name:      "exports_total",
			Help:      "Spreadsheet exports by resource and archive outcome.",
		}, []string{"resource", "archived"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.latency, m.borrows, m.returns, m.loanDeletes, m.exports,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) Borrowed(kind string, matched bool) {
	m.borrows.WithLabelValues(kind, strconv.FormatBool(matched)).Inc()
}

func (m *Metrics) Returned(kind string) {
	m.returns.WithLabelValues(kind).Inc()
}

func (m *Metrics) LoanDeleted(kind string, restored bool) {
	m.loanDeletes.WithLabelValues(kind, strconv.FormatBool(restored)).Inc()
}

func (m *Metrics) Exported(resource string, archived bool) {
	m.exports.WithLabelValues(resource, strconv.FormatBool(archived)).Inc()
}
