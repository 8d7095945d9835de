package differential

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics contains Prometheus collectors for the differential store.
type metrics struct {
	ingests         prometheus.Counter
	commits         prometheus.Counter
	conflicts       prometheus.Counter
	reconstructions prometheus.Counter
	commitDuration  prometheus.Histogram
}

var (
	metricsOnce sync.Once
	m           *metrics
)

// engineMetrics returns the process-wide collectors, registering them on
// the default registry on first use. A singleton keeps tests that open
// many stores from double-registering.
func engineMetrics() *metrics {
	metricsOnce.Do(func() {
		m = &metrics{
			ingests: promauto.NewCounter(prometheus.CounterOpts{
				Name: "redline_ingests_total",
				Help: "Total number of new contracts ingested",
			}),
			commits: promauto.NewCounter(prometheus.CounterOpts{
				Name: "redline_version_commits_total",
				Help: "Total number of version commits that succeeded",
			}),
			conflicts: promauto.NewCounter(prometheus.CounterOpts{
				Name: "redline_version_conflicts_total",
				Help: "Total number of commits rejected by the sequential version check",
			}),
			reconstructions: promauto.NewCounter(prometheus.CounterOpts{
				Name: "redline_reconstructions_total",
				Help: "Total number of historical version reconstructions",
			}),
			commitDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "redline_commit_duration_seconds",
				Help:    "Duration of version commit transactions",
				Buckets: prometheus.DefBuckets,
			}),
		}
	})
	return m
}
