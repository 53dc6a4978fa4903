// Package metrics exposes Prometheus instrumentation for codec activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ssargent/secded/pkg/hamming"
)

// Metrics holds all Prometheus metrics for the codec and vector generation
type Metrics struct {
	encodeTotal   prometheus.Counter
	decodeTotal   *prometheus.CounterVec
	injectedFlips prometheus.Histogram
	vectorsTotal  *prometheus.CounterVec
}

// New creates the metrics and registers them with reg. A nil reg registers
// with the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		encodeTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "secded_encode_total",
				Help: "Total number of blocks encoded",
			},
		),

		decodeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secded_decode_total",
				Help: "Total number of blocks decoded, by outcome",
			},
			[]string{"status"},
		),

		injectedFlips: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "secded_injected_flips",
				Help:    "Number of bits flipped per simulated transmission",
				Buckets: []float64{0, 1, 2, 3, 4},
			},
		),

		vectorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secded_vectors_total",
				Help: "Total number of test vectors written, by kind",
			},
			[]string{"kind"},
		),
	}
}

// RecordEncode records one encoded block
func (m *Metrics) RecordEncode() {
	if m == nil {
		return
	}
	m.encodeTotal.Inc()
}

// RecordDecode records the outcome of one decode
func (m *Metrics) RecordDecode(status hamming.Status) {
	if m == nil {
		return
	}
	m.decodeTotal.WithLabelValues(string(status)).Inc()
}

// RecordFlips records how many bits a simulated channel flipped
func (m *Metrics) RecordFlips(n int) {
	if m == nil {
		return
	}
	m.injectedFlips.Observe(float64(n))
}

// RecordVector records one written test vector
func (m *Metrics) RecordVector(kind string) {
	if m == nil {
		return
	}
	m.vectorsTotal.WithLabelValues(kind).Inc()
}
