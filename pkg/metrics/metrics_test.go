package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/secded/pkg/hamming"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordEncode()
	m.RecordEncode()
	m.RecordDecode(hamming.StatusClean)
	m.RecordDecode(hamming.StatusCorrected)
	m.RecordDecode(hamming.StatusCorrected)
	m.RecordDecode(hamming.StatusUncorrectable)
	m.RecordFlips(1)
	m.RecordFlips(2)
	m.RecordVector("decoder")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.encodeTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeTotal.WithLabelValues("clean")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.decodeTotal.WithLabelValues("corrected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decodeTotal.WithLabelValues("uncorrectable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.vectorsTotal.WithLabelValues("decoder")))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{"secded_encode_total", "secded_decode_total", "secded_injected_flips", "secded_vectors_total"} {
		assert.True(t, names[want], "missing metric %s", want)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordEncode()
		m.RecordDecode(hamming.StatusClean)
		m.RecordFlips(1)
		m.RecordVector("parity")
	})
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
