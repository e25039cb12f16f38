// Package metrics exposes Prometheus instrumentation for the monitor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records probe and sweep activity. All methods are safe on a nil
// receiver so the core stays usable without instrumentation.
type Collector struct {
	probesTotal   *prometheus.CounterVec
	probeDuration prometheus.Histogram
	endpointUp    *prometheus.GaugeVec
	sweepsTotal   prometheus.Counter
	sweepDuration prometheus.Histogram
	linksTotal    prometheus.Gauge
	linksActive   prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		probesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keepalive_probes_total",
				Help: "Total number of probes performed",
			},
			[]string{"outcome"},
		),
		probeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "keepalive_probe_duration_seconds",
				Help:    "Duration of endpoint probes",
				Buckets: prometheus.DefBuckets,
			},
		),
		endpointUp: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "keepalive_endpoint_up",
				Help: "Latest probe outcome per endpoint (1 online, 0 offline)",
			},
			[]string{"code"},
		),
		sweepsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "keepalive_sweeps_total",
				Help: "Total number of completed sweeps",
			},
		),
		sweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "keepalive_sweep_duration_seconds",
				Help:    "Wall-clock duration of full sweeps",
				Buckets: []float64{1, 5, 15, 60, 300, 900},
			},
		),
		linksTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "keepalive_links_total",
				Help: "Number of registered endpoints",
			},
		),
		linksActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "keepalive_links_active",
				Help: "Number of endpoints currently online",
			},
		),
	}
}

func (c *Collector) RecordProbe(code string, success bool, durationSeconds float64) {
	if c == nil {
		return
	}
	outcome := "failure"
	up := 0.0
	if success {
		outcome = "success"
		up = 1.0
	}
	c.probesTotal.WithLabelValues(outcome).Inc()
	c.probeDuration.Observe(durationSeconds)
	c.endpointUp.WithLabelValues(code).Set(up)
}

func (c *Collector) RecordRemoval(code string) {
	if c == nil {
		return
	}
	c.endpointUp.DeleteLabelValues(code)
}

func (c *Collector) RecordSweep(durationSeconds float64) {
	if c == nil {
		return
	}
	c.sweepsTotal.Inc()
	c.sweepDuration.Observe(durationSeconds)
}

func (c *Collector) RecordStats(total, active int) {
	if c == nil {
		return
	}
	c.linksTotal.Set(float64(total))
	c.linksActive.Set(float64(active))
}
