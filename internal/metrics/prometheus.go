// Package metrics provides Prometheus metrics for the bakery API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bakery"

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bakedGoodsCreated prometheus.Counter
	bakedGoodsDeleted prometheus.Counter
	bakeriesUpdated   prometheus.Counter

	cacheLookups *prometheus.CounterVec
}

// New registers all collectors, including the Go runtime collector, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	auto := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		bakedGoodsCreated: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "baked_goods_created_total",
			Help:      "Total number of baked goods created",
		}),
		bakedGoodsDeleted: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "baked_goods_deleted_total",
			Help:      "Total number of baked goods deleted",
		}),
		bakeriesUpdated: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bakeries_updated_total",
			Help:      "Total number of bakery renames persisted",
		}),
		cacheLookups: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Response cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

func (m *Metrics) BakedGoodCreated() { m.bakedGoodsCreated.Inc() }
func (m *Metrics) BakedGoodDeleted() { m.bakedGoodsDeleted.Inc() }
func (m *Metrics) BakeryUpdated()    { m.bakeriesUpdated.Inc() }

// CacheLookup records result as one of "hit", "miss" or "error".
func (m *Metrics) CacheLookup(result string) {
	m.cacheLookups.WithLabelValues(result).Inc()
}
