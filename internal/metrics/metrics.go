// Package metrics exposes Prometheus metrics for graph loads and searches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/geoplan/astar"
)

// Namespace prefixes every metric name.
const Namespace = "geoplan"

// Result label values.
const (
	ResultOK     = "ok"
	ResultError  = "error"
	ResultFound  = "found"
	ResultNoPath = "no_path"
)

// Collector holds all Prometheus metrics for the planner. Each Collector owns
// its registry, so several can coexist in one process (tests, embedded use).
type Collector struct {
	registry *prometheus.Registry

	Loads          *prometheus.CounterVec
	Searches       *prometheus.CounterVec
	OpenNodes      prometheus.Histogram
	ClosedNodes    prometheus.Histogram
	SearchDuration prometheus.Histogram
	Points         prometheus.Gauge
	Routes         prometheus.Gauge
}

// NewCollector creates and registers the planner metrics. With withRuntime
// set, the Go runtime and process collectors are registered too.
func NewCollector(withRuntime bool) *Collector {
	registry := prometheus.NewRegistry()

	// Frontier sizes grow with the network; buckets span 1 to 16384.
	nodeBuckets := prometheus.ExponentialBuckets(1, 2, 15)

	c := &Collector{
		registry: registry,
		Loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "loads_total",
				Help:      "Total number of graph load attempts",
			},
			[]string{"result"},
		),
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "searches_total",
				Help:      "Total number of shortest-path searches",
			},
			[]string{"result"},
		),
		OpenNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "search_open_nodes",
				Help:      "Frontier size when a search terminates",
				Buckets:   nodeBuckets,
			},
		),
		ClosedNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "search_closed_nodes",
				Help:      "Number of points expanded by a search",
				Buckets:   nodeBuckets,
			},
		),
		SearchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "search_duration_seconds",
				Help:      "Shortest-path search duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		Points: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "graph_points",
				Help:      "Number of points currently loaded",
			},
		),
		Routes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "graph_routes",
				Help:      "Number of routes currently loaded",
			},
		),
	}

	registry.MustRegister(
		c.Loads,
		c.Searches,
		c.OpenNodes,
		c.ClosedNodes,
		c.SearchDuration,
		c.Points,
		c.Routes,
	)
	if withRuntime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return c
}

// ObserveLoad records one load attempt. Its signature matches core.LoadHook.
func (c *Collector) ObserveLoad(points, routes int, err error) {
	if err != nil {
		c.Loads.WithLabelValues(ResultError).Inc()
	} else {
		c.Loads.WithLabelValues(ResultOK).Inc()
	}
	c.Points.Set(float64(points))
	c.Routes.Set(float64(routes))
}

// ObserveSearch records one search outcome and how long it took. Frontier
// sizes are observed only for searches that ran to completion.
func (c *Collector) ObserveSearch(res astar.Result, err error, took time.Duration) {
	c.SearchDuration.Observe(took.Seconds())
	switch {
	case err != nil:
		c.Searches.WithLabelValues(ResultError).Inc()
		return
	case res.Found():
		c.Searches.WithLabelValues(ResultFound).Inc()
	default:
		c.Searches.WithLabelValues(ResultNoPath).Inc()
	}
	c.OpenNodes.Observe(float64(res.Open))
	c.ClosedNodes.Observe(float64(res.Closed))
}

// Registry returns the Prometheus registry for this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
