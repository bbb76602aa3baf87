// Package httpapi: Prometheus instrumentation.

package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "sna"
	metricsSubsystem = "api"
)

// metrics holds the upload-surface counters. Each Server owns one set,
// registered on its own registry, so hosting two servers in one process
// never trips duplicate registration.
type metrics struct {
	// uploadsTotal counts accepted uploads (fast-path reuses included).
	uploadsTotal prometheus.Counter

	// parseFailuresTotal counts uploads rejected as malformed input.
	parseFailuresTotal prometheus.Counter

	// restoreFailuresTotal counts restores that found the payload
	// unusable and cleared the slot.
	restoreFailuresTotal prometheus.Counter

	// uploadBytes observes accepted upload sizes.
	uploadBytes prometheus.Histogram
}

func newMetrics(reg *prometheus.Registry) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		uploadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "uploads_total",
			Help:      "Total accepted network uploads",
		}),
		parseFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "parse_failures_total",
			Help:      "Total uploads rejected as malformed coordinate text",
		}),
		restoreFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "restore_failures_total",
			Help:      "Total restores that cleared the slot over an unusable payload",
		}),
		uploadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "upload_bytes",
			Help:      "Accepted upload body sizes in bytes",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 10),
		}),
	}
}

func (m *metrics) recordUpload(size int) {
	m.uploadsTotal.Inc()
	m.uploadBytes.Observe(float64(size))
}
