package service

import "PairScope/internal/domain/models"

// PairAnalyzer turns two aligned price histories and live prices into a full analysis.
type PairAnalyzer interface {
	Run(inputs models.AnalysisInputs) (*models.AnalysisResult, error)
}
