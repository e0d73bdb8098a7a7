package analytics

import (
	"fmt"
	"strings"

	"PairScope/internal/domain/models"
	domsvc "PairScope/internal/domain/service"
	"PairScope/internal/services/features"
)

const (
	// DefaultMinPoints is the fewest aligned observations an analysis accepts.
	DefaultMinPoints = 20
	// DefaultMinCorrelation is the correlation below which a pair is flagged.
	DefaultMinCorrelation = 0.7
)

// Warning kinds, used as low-cardinality labels for the free-text warnings.
const (
	WarningLowCorrelation = "low_correlation"
	WarningInvalidBeta    = "invalid_beta"
	WarningFlatSpread     = "flat_spread"
	WarningOther          = "other"
)

const (
	lowCorrelationPrefix = "Low correlation"
	invalidBetaPrefix    = "Invalid beta"
	flatSpreadWarning    = "Spread standard deviation too small. Cannot size positions."
)

// WarningKind classifies a warning produced by Run.
func WarningKind(warning string) string {
	switch {
	case strings.HasPrefix(warning, lowCorrelationPrefix):
		return WarningLowCorrelation
	case strings.HasPrefix(warning, invalidBetaPrefix):
		return WarningInvalidBeta
	case warning == flatSpreadWarning:
		return WarningFlatSpread
	default:
		return WarningOther
	}
}

// EngineOption configures Engine.
type EngineOption func(*Engine)

// WithMinPoints overrides the minimum number of aligned observations.
func WithMinPoints(n int) EngineOption {
	return func(e *Engine) {
		if n >= 2 {
			e.minPoints = n
		}
	}
}

// WithMinCorrelation overrides the low-correlation warning floor.
func WithMinCorrelation(c float64) EngineOption {
	return func(e *Engine) {
		e.minCorrelation = c
	}
}

// Engine runs the pair analysis pipeline. It holds only immutable settings and
// is safe for concurrent use.
type Engine struct {
	minPoints      int
	minCorrelation float64
}

// NewEngine creates an Engine with the standard thresholds.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		minPoints:      DefaultMinPoints,
		minCorrelation: DefaultMinCorrelation,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MinPoints returns the configured minimum number of aligned observations.
func (e *Engine) MinPoints() int { return e.minPoints }

// Run computes statistics, signal, positions and risk plan for one pair.
// It fails with *ValidationError when the aligned series are unusable; every
// other problem is reported through Signal.Warnings and a nil Positions.
func (e *Engine) Run(in models.AnalysisInputs) (*models.AnalysisResult, error) {
	seriesA, seriesB := applyLookback(in.HistoricalA, in.HistoricalB, in.LookbackN)

	if len(seriesA) != len(seriesB) {
		return nil, &ValidationError{Field: "historicalB", Reason: "Historical series lengths must match"}
	}
	if len(seriesA) < e.minPoints {
		return nil, &ValidationError{Field: "historicalA", Reason: fmt.Sprintf("Need at least %d data points", e.minPoints)}
	}

	warnings := make([]string, 0, 3)

	correlation := features.PearsonCorrelation(seriesA, seriesB)
	if correlation < e.minCorrelation {
		warnings = append(warnings, fmt.Sprintf("%s (%.3f). Pair may not be suitable for mean reversion.", lowCorrelationPrefix, correlation))
	}

	beta := ComputeBeta(in.HedgeMethod, seriesA, seriesB)
	if !validBeta(beta) {
		warnings = append(warnings, fmt.Sprintf("%s (%s). Cannot size positions.", invalidBetaPrefix, formatNumber(beta)))
	}

	spread := ComputeSpread(seriesA, seriesB, beta, in.PriceA, in.PriceB)
	if spread.Stdev <= MinSpreadStdev {
		warnings = append(warnings, flatSpreadWarning)
	}

	signal := DeriveSignal(spread.ZScore, in.EntryThresholdZ)
	direction := PositionDirection(signal, spread.ZScore)

	lookback := in.LookbackN
	if lookback <= 0 {
		lookback = len(seriesA)
	}

	return &models.AnalysisResult{
		Inputs: resolveInputs(in, lookback),
		Stats: models.AnalysisStats{
			Correlation: correlation,
			Beta:        beta,
			SpreadMean:  spread.Mean,
			SpreadStdev: spread.Stdev,
			SpreadNow:   spread.Now,
			ZScoreNow:   spread.ZScore,
		},
		Signal: models.AnalysisSignal{
			TradeSignal:    signal,
			ConfidenceNote: ConfidenceNote(signal, spread.ZScore),
			Warnings:       warnings,
		},
		Positions: SizePositions(sizingInputsFrom(in), beta, spread.Stdev, direction),
		RiskPlan:  BuildRiskPlan(riskPlanInputsFrom(in), spread.Stdev),
	}, nil
}

// applyLookback keeps the last n points of each series when n > 0.
func applyLookback(a, b []float64, n int) ([]float64, []float64) {
	if n <= 0 {
		return a, b
	}
	return lastN(a, n), lastN(b, n)
}

func lastN(xs []float64, n int) []float64 {
	if n >= len(xs) {
		return xs
	}
	return xs[len(xs)-n:]
}

func resolveInputs(in models.AnalysisInputs, lookback int) models.ResolvedInputs {
	return models.ResolvedInputs{
		AssetA:           in.AssetA,
		AssetB:           in.AssetB,
		PriceA:           in.PriceA,
		PriceB:           in.PriceB,
		LookbackN:        lookback,
		PortfolioSizeUsd: in.PortfolioSizeUsd,
		RiskPct:          in.RiskPct,
		MaxLeverageCap:   in.MaxLeverageCap,
		EntryThresholdZ:  in.EntryThresholdZ,
		ExitZ:            in.ExitZ,
		SoftExitZ:        in.SoftExitZ,
		MaxHoldingDays:   in.MaxHoldingDays,
		StopLossMult:     in.StopLossMult,
		TakeProfitMult:   in.TakeProfitMult,
		HedgeMethod:      in.HedgeMethod,
	}
}

var _ domsvc.PairAnalyzer = (*Engine)(nil)
