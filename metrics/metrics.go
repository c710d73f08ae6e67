// Package metrics exposes a Formatter's locale-cache counters as a
// Prometheus collector. Import is optional; the root package does not
// depend on Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	reltime "github.com/wethinkt/go-reltime"
)

// CacheCollector reports the cache statistics of a Formatter on each
// scrape. Register it with a prometheus.Registerer.
type CacheCollector struct {
	formatter *reltime.Formatter

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	size      *prometheus.Desc
}

// NewCacheCollector builds a collector for f. namespace prefixes the
// metric names, e.g. "myapp" yields myapp_reltime_cache_hits_total.
func NewCacheCollector(f *reltime.Formatter, namespace string) *CacheCollector {
	return &CacheCollector{
		formatter: f,
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "reltime", "cache_hits_total"),
			"Total locale formatter cache hits.", nil, nil),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "reltime", "cache_misses_total"),
			"Total locale formatter cache misses.", nil, nil),
		evictions: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "reltime", "cache_evictions_total"),
			"Total locale formatter cache evictions.", nil, nil),
		size: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "reltime", "cache_entries"),
			"Locale formatters currently cached.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.size
}

// Collect implements prometheus.Collector.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.formatter.CacheStats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
}
