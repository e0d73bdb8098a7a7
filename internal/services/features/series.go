package features

import "gonum.org/v1/gonum/stat"

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdevSample returns the sample standard deviation (n-1 denominator).
// It returns 0 when fewer than two values are given.
func StdevSample(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// PearsonCorrelation returns the correlation coefficient of two aligned series.
// Unequal lengths, fewer than two points, or a zero-variance series yield 0.
func PearsonCorrelation(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0
	}
	if stat.Variance(a, nil) == 0 || stat.Variance(b, nil) == 0 {
		return 0
	}
	return stat.Correlation(a, b, nil)
}

// Returns computes simple period-over-period returns r_t = (P_t - P_{t-1}) / P_{t-1}.
// The result has length len(series)-1, or is empty for fewer than two points.
func Returns(series []float64) []float64 {
	if len(series) < 2 {
		return []float64{}
	}
	out := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		out = append(out, (series[i]-series[i-1])/series[i-1])
	}
	return out
}
