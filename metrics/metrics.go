// Package metrics exposes topolog's emission counters to Prometheus.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/logger"
)

// Collector reads a logger.Snapshot on every scrape
type Collector struct {
	snapshot   func() logger.Snapshot
	emitted    *prometheus.Desc
	suppressed *prometheus.Desc
	failed     *prometheus.Desc
}

// NewCollector creates a collector over snapshot. A nil snapshot reads the
// global logger's counters.
func NewCollector(snapshot func() logger.Snapshot) *Collector {
	if snapshot == nil {
		snapshot = logger.CurrentStats
	}
	return &Collector{
		snapshot: snapshot,
		emitted: prometheus.NewDesc(
			"topolog_records_emitted_total",
			"Records written by the log handler",
			[]string{"level"}, nil,
		),
		suppressed: prometheus.NewDesc(
			"topolog_records_suppressed_total",
			"Records rejected by the log filter",
			[]string{"level"}, nil,
		),
		failed: prometheus.NewDesc(
			"topolog_write_errors_total",
			"Records lost to a failed write",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.emitted
	ch <- c.suppressed
	ch <- c.failed
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.snapshot()
	for _, l := range core.Levels() {
		label := strings.ToLower(l.String())
		ch <- prometheus.MustNewConstMetric(c.emitted, prometheus.CounterValue, float64(snap.Emitted[l]), label)
		ch <- prometheus.MustNewConstMetric(c.suppressed, prometheus.CounterValue, float64(snap.Suppressed[l]), label)
	}
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(snap.Failed))
}

// NewRegistry returns a registry holding c
func NewRegistry(c *Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(c)
	return reg
}

// Handler serves the metrics of reg in the Prometheus text format
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
