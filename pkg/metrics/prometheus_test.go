package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.RecordSignal("SHORT_A_LONG_B")
	r.RecordSignal("SHORT_A_LONG_B")
	r.RecordSignal("NO_SIGNAL")
	r.RecordWarning("low_correlation")
	r.RecordSkippedPositions()
	r.RecordError("validation")
	r.RecordLastZScore("BTC/ETH", -2.5)
	r.RecordLatency("analyze", 0.002)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.signals.WithLabelValues("SHORT_A_LONG_B")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.signals.WithLabelValues("NO_SIGNAL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.warnings.WithLabelValues("low_correlation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.skippedSizing))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("validation")))
	assert.Equal(t, -2.5, testutil.ToFloat64(r.lastZScore.WithLabelValues("BTC/ETH")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.latency))
}
