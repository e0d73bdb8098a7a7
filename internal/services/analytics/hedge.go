package analytics

import (
	"gonum.org/v1/gonum/stat"

	"PairScope/internal/domain/models"
	"PairScope/internal/services/features"
)

// ComputeBetaRegression returns the OLS slope of seriesA on seriesB.
// Degenerate input (unequal lengths, fewer than two points, constant B) yields 0.
func ComputeBetaRegression(seriesA, seriesB []float64) float64 {
	if len(seriesA) != len(seriesB) || len(seriesA) < 2 {
		return 0
	}
	varB := stat.Variance(seriesB, nil)
	if varB == 0 {
		return 0
	}
	return stat.Covariance(seriesA, seriesB, nil) / varB
}

// ComputeBetaVolRatio scales the return-volatility ratio of A to B by their return correlation.
func ComputeBetaVolRatio(seriesA, seriesB []float64) float64 {
	if len(seriesA) != len(seriesB) || len(seriesA) < 2 {
		return 0
	}
	retA := features.Returns(seriesA)
	retB := features.Returns(seriesB)

	sdA := features.StdevSample(retA)
	sdB := features.StdevSample(retB)
	if sdB == 0 {
		return 0
	}
	return features.PearsonCorrelation(retA, retB) * (sdA / sdB)
}

// ComputeBeta dispatches on method. Anything other than volRatio uses regression.
func ComputeBeta(method models.HedgeMethod, seriesA, seriesB []float64) float64 {
	switch method {
	case models.HedgeVolRatio:
		return ComputeBetaVolRatio(seriesA, seriesB)
	case models.HedgeRegression:
		return ComputeBetaRegression(seriesA, seriesB)
	default:
		return ComputeBetaRegression(seriesA, seriesB)
	}
}
