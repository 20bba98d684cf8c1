package status

import (
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes every Registry metric as a Prometheus gauge
// Metric names are derived from registry keys: "run.score" becomes kataster_run_score
type Collector struct {
	reg       *Registry
	namespace string
}

// NewCollector creates a collector reading from reg
func NewCollector(reg *Registry, namespace string) *Collector {
	return &Collector{reg: reg, namespace: namespace}
}

// Describe implements prometheus.Collector
// Metrics are registered lazily by systems, so the collector is unchecked
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(key string, v *atomic.Int64) {
		c.emit(ch, key, float64(v.Load()))
	})
	c.reg.Floats.Range(func(key string, v *AtomicFloat) {
		c.emit(ch, key, v.Get())
	})
	c.reg.Bools.Range(func(key string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		c.emit(ch, key, val)
	})
}

func (c *Collector) emit(ch chan<- prometheus.Metric, key string, val float64) {
	desc := prometheus.NewDesc(MetricName(c.namespace, key), "kataster status metric "+key, nil, nil)
	m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, val)
	if err != nil {
		return
	}
	ch <- m
}

// MetricName converts a dotted registry key to a Prometheus metric name
func MetricName(namespace, key string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, key)
	if namespace == "" {
		return name
	}
	return namespace + "_" + name
}
