package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PairScope/internal/domain/models"
)

func TestZScore(t *testing.T) {
	assert.InDelta(t, 2.8333, ZScore(51700, 50000, 600), 1e-4)
	assert.Equal(t, 0.0, ZScore(5, 3, 0))
	assert.InDelta(t, -1.0, ZScore(4, 5, 1), 1e-12)
}

func TestComputeSpreadUsesSpotPrices(t *testing.T) {
	a := []float64{10, 11, 12, 13}
	b := []float64{5, 5, 6, 6}
	s := ComputeSpread(a, b, 0.1, 52000, 3000)

	assert.InDelta(t, 51700, s.Now, 1e-9)
	assert.Len(t, s.Series, 4)
	assert.InDelta(t, 9.5, s.Series[0], 1e-12)
	assert.Empty(t, SpreadSeries(a, b[:2], 1))
}

func TestDeriveSignal(t *testing.T) {
	tests := []struct {
		name  string
		z     float64
		entry float64
		want  models.TradeSignal
	}{
		{"above entry", 2.8333, 2, models.SignalShortALongB},
		{"at entry", 2, 2, models.SignalShortALongB},
		{"below negative entry", -2.5, 2, models.SignalLongAShortB},
		{"at negative entry", -2, 2, models.SignalLongAShortB},
		{"inside band", 1.99, 2, models.SignalNone},
		{"higher entry", 2.8333, 3, models.SignalNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSignal(tt.z, tt.entry))
		})
	}
}

func TestConfidenceNote(t *testing.T) {
	assert.Equal(t, noteNoSignal, ConfidenceNote(models.SignalNone, 5))
	assert.Equal(t, noteStrong, ConfidenceNote(models.SignalShortALongB, 3))
	assert.Equal(t, noteStrong, ConfidenceNote(models.SignalLongAShortB, -3.4))
	assert.Equal(t, noteModerate, ConfidenceNote(models.SignalShortALongB, 2.8333))
	assert.Equal(t, noteWeak, ConfidenceNote(models.SignalShortALongB, 1.6))
}

func TestPositionDirection(t *testing.T) {
	assert.Equal(t, models.SignalLongAShortB, PositionDirection(models.SignalLongAShortB, 3))
	assert.Equal(t, models.SignalShortALongB, PositionDirection(models.SignalNone, 0))
	assert.Equal(t, models.SignalShortALongB, PositionDirection(models.SignalNone, 0.4))
	assert.Equal(t, models.SignalLongAShortB, PositionDirection(models.SignalNone, -0.4))
}
