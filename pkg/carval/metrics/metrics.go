// Package metrics exposes Prometheus metrics for valuations and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
)

const namespace = "carval"

// Metrics holds every collector of the service.
type Metrics struct {
	registry *prometheus.Registry

	Valuations        *prometheus.CounterVec
	Confidence        prometheus.Histogram
	ValuationDuration prometheus.Histogram
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	TableReloads      *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Valuations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "valuations_total",
				Help:      "Total number of valuations by mileage method and fallback method",
			},
			[]string{"mileage_method", "fallback"},
		),
		Confidence: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "valuation_confidence",
				Help:      "Confidence score of produced valuations",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
		ValuationDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "valuation_duration_seconds",
				Help:      "Time spent inside the valuation engine",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"route", "method", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		TableReloads: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reference_table_reloads_total",
				Help:      "Reference table reload attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveValuation records one engine result.
func (m *Metrics) ObserveValuation(res dal.ValuationResult, took time.Duration) {
	fallback := "none"
	if res.Fallback != nil {
		fallback = string(res.Fallback.Method)
	}
	m.Valuations.WithLabelValues(string(res.Mileage.Method), fallback).Inc()
	m.Confidence.Observe(float64(res.Confidence))
	m.ValuationDuration.Observe(took.Seconds())
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, took time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route, method).Observe(took.Seconds())
}

// ObserveReload records a reference table reload. It matches the callback
// signature of reference.Store.Watch.
func (m *Metrics) ObserveReload(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	m.TableReloads.WithLabelValues(outcome).Inc()
}
