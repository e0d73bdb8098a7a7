package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Mean([]float64{}))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestStdevSample(t *testing.T) {
	assert.Equal(t, 0.0, StdevSample(nil))
	assert.Equal(t, 0.0, StdevSample([]float64{42}))
	// 2,4,4,4,5,5,7,9: sum of squared deviations = 32, n-1 = 7
	assert.InDelta(t, math.Sqrt(32.0/7.0), StdevSample([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
	assert.Equal(t, 0.0, StdevSample([]float64{3, 3, 3}))
}

func TestPearsonCorrelation(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10}, 1},
		{"perfect negative", []float64{1, 2, 3, 4, 5}, []float64{10, 8, 6, 4, 2}, -1},
		{"partial", []float64{1, 2, 3, 4, 5}, []float64{2, 1, 4, 3, 5}, 0.8},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, 0},
		{"too short", []float64{1}, []float64{1}, 0},
		{"zero variance", []float64{1, 2, 3}, []float64{5, 5, 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PearsonCorrelation(tt.a, tt.b), 1e-12)
		})
	}
}

func TestPearsonCorrelation_SymmetricAndBounded(t *testing.T) {
	a := []float64{10.5, 11.2, 9.8, 12.4, 13.1, 12.9, 11.7, 14.2}
	b := []float64{3.1, 2.9, 3.4, 3.0, 3.8, 3.6, 3.2, 4.1}

	ab := PearsonCorrelation(a, b)
	ba := PearsonCorrelation(b, a)
	assert.InDelta(t, ab, ba, 1e-15)
	assert.GreaterOrEqual(t, ab, -1.0)
	assert.LessOrEqual(t, ab, 1.0)
}

func TestReturns(t *testing.T) {
	assert.Empty(t, Returns([]float64{100}))

	got := Returns([]float64{100, 110, 99})
	if assert.Len(t, got, 2) {
		assert.InDelta(t, 0.1, got[0], 1e-12)
		assert.InDelta(t, -0.1, got[1], 1e-12)
	}
}
