package analytics

import "PairScope/internal/services/features"

// Spread describes the historical distribution of A - beta*B and where the
// live spot prices sit within it.
type Spread struct {
	Series []float64
	Mean   float64
	Stdev  float64
	Now    float64
	ZScore float64
}

// SpreadSeries returns A[t] - beta*B[t], or an empty slice when lengths differ.
func SpreadSeries(seriesA, seriesB []float64, beta float64) []float64 {
	if len(seriesA) != len(seriesB) {
		return []float64{}
	}
	out := make([]float64, len(seriesA))
	for i, a := range seriesA {
		out[i] = a - beta*seriesB[i]
	}
	return out
}

// ZScore returns (x-mean)/stdev, or 0 when stdev is 0.
func ZScore(x, mean, stdev float64) float64 {
	if stdev == 0 {
		return 0
	}
	return (x - mean) / stdev
}

// ComputeSpread takes the distribution from history and the current value from spot prices.
func ComputeSpread(seriesA, seriesB []float64, beta, priceA, priceB float64) Spread {
	series := SpreadSeries(seriesA, seriesB, beta)
	mean := features.Mean(series)
	stdev := features.StdevSample(series)
	now := priceA - beta*priceB

	return Spread{
		Series: series,
		Mean:   mean,
		Stdev:  stdev,
		Now:    now,
		ZScore: ZScore(now, mean, stdev),
	}
}
