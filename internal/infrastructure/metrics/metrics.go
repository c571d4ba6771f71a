// Package metrics exposes prometheus collectors for the request workflow.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saase/requesthub/internal/domain/report"
	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
)

const namespace = "requesthub"

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	requestsCreated *prometheus.CounterVec
	statusChanges   *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	reportsResolved *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_created_total",
			Help:      "Total number of requests created.",
		}, []string{"source"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_changes_total",
			Help:      "Total number of request status updates.",
		}, []string{"from", "to"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of webhook notifications by result.",
		}, []string{"result"}),
		reportsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_resolved_total",
			Help:      "Total number of report resolutions by source and fallback reason.",
		}, []string{"source", "reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution for HTTP requests.",
			Buckets: []float64{
				0.005, 0.01, 0.025,
				0.05, 0.1, 0.25,
				0.5, 1, 2.5, 5,
			},
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsCreated,
		m.statusChanges,
		m.notifications,
		m.reportsResolved,
		m.httpRequests,
		m.httpLatency,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RequestCreated(source string) {
	m.requestsCreated.WithLabelValues(source).Inc()
}

func (m *Metrics) StatusChanged(from, to vo.RequestStatus) {
	m.statusChanges.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) NotificationSent(ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	m.notifications.WithLabelValues(result).Inc()
}

func (m *Metrics) ReportResolved(source report.Source, reason report.Reason) {
	m.reportsResolved.WithLabelValues(string(source), string(reason)).Inc()
}

// ObserveHTTP records one served request. route is the gin route template.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
