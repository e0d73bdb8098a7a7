package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"PairScope/internal/domain/models"
	domrepo "PairScope/internal/domain/repository"
	domsvc "PairScope/internal/domain/service"
	"PairScope/internal/services/analytics"
	applogger "PairScope/pkg/logger"
)

const (
	defaultAssetA    = "A"
	defaultAssetB    = "B"
	defaultSoftExitZ = 1.0

	missingHistoryReason = "Please provide historical data for both assets"
)

// PairAnalysis adapts API requests to the analysis engine and records the outcome.
type PairAnalysis struct {
	analyzer  domsvc.PairAnalyzer
	metrics   domrepo.Metrics
	logger    *applogger.Logger
	maxPoints int
	cache     domrepo.ResultCache
	cacheTTL  time.Duration
}

// Option configures PairAnalysis.
type Option func(*PairAnalysis)

// WithResultCache reuses results for identical engine inputs for ttl.
func WithResultCache(c domrepo.ResultCache, ttl time.Duration) Option {
	return func(p *PairAnalysis) {
		p.cache = c
		p.cacheTTL = ttl
	}
}

// NewPairAnalysis creates the use case. maxPoints <= 0 disables the series length cap.
func NewPairAnalysis(analyzer domsvc.PairAnalyzer, metrics domrepo.Metrics, l *applogger.Logger, maxPoints int, opts ...Option) *PairAnalysis {
	if l == nil {
		l = applogger.Nop()
	}
	p := &PairAnalysis{analyzer: analyzer, metrics: metrics, logger: l, maxPoints: maxPoints}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Analyze resolves the price histories, runs the engine and attaches the
// caller-supplied sentiment. Unusable input fails with *analytics.ValidationError.
func (p *PairAnalysis) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() { p.metrics.RecordLatency("analyze", time.Since(start).Seconds()) }()

	inputs, err := p.buildInputs(req)
	if err != nil {
		p.reject(req, err)
		return nil, err
	}
	pair := inputs.AssetA + "/" + inputs.AssetB
	key := cacheKey(inputs)

	res, hit := p.cached(ctx, key)
	if !hit {
		res, err = p.analyzer.Run(inputs)
		if err != nil {
			if analytics.IsValidationError(err) {
				p.reject(req, err)
				return nil, err
			}
			p.metrics.RecordError("engine")
			p.logger.Error("analysis failed", applogger.String("pair", pair), applogger.Error(err))
			return nil, fmt.Errorf("run analysis %s: %w", pair, err)
		}
		p.store(ctx, key, res)
	}
	res.Foils = req.Foils

	p.metrics.RecordSignal(string(res.Signal.TradeSignal))
	p.metrics.RecordLastZScore(pair, res.Stats.ZScoreNow)
	for _, w := range res.Signal.Warnings {
		p.metrics.RecordWarning(analytics.WarningKind(w))
		p.logger.Warn("analysis warning", applogger.String("pair", pair), applogger.String("warning", w))
	}
	if res.Positions == nil {
		p.metrics.RecordSkippedPositions()
	}

	p.logger.Info("pair analysed",
		applogger.String("pair", pair),
		applogger.String("signal", string(res.Signal.TradeSignal)),
		applogger.Float64("z", res.Stats.ZScoreNow),
		applogger.Float64("beta", res.Stats.Beta),
		applogger.Float64("correlation", res.Stats.Correlation),
		applogger.Int("points", res.Inputs.LookbackN),
		applogger.Bool("sized", res.Positions != nil),
		applogger.Bool("cached", hit),
	)
	return res, nil
}

func (p *PairAnalysis) cached(ctx context.Context, key string) (*models.AnalysisResult, bool) {
	if p.cache == nil || key == "" {
		return nil, false
	}
	b, ok, err := p.cache.GetBytes(ctx, key)
	if err != nil {
		p.metrics.RecordError("cache")
		p.logger.Warn("result cache read failed", applogger.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var res models.AnalysisResult
	if err := json.Unmarshal(b, &res); err != nil {
		p.logger.Warn("result cache entry unreadable", applogger.Error(err))
		return nil, false
	}
	return &res, true
}

func (p *PairAnalysis) store(ctx context.Context, key string, res *models.AnalysisResult) {
	if p.cache == nil || key == "" {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		p.logger.Warn("result not cacheable", applogger.Error(err))
		return
	}
	if err := p.cache.SetBytes(ctx, key, b, p.cacheTTL); err != nil {
		p.metrics.RecordError("cache")
		p.logger.Warn("result cache write failed", applogger.Error(err))
	}
}

// cacheKey fingerprints the engine inputs. The engine is deterministic, so equal
// inputs always produce equal results.
func cacheKey(in models.AnalysisInputs) string {
	b, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return "analysis:" + hex.EncodeToString(sum[:])
}

// Recheck scores fresh spot prices against a previously computed spread
// distribution without rerunning the pipeline.
func (p *PairAnalysis) Recheck(ctx context.Context, req *models.RecheckRequest) (*models.RecheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() { p.metrics.RecordLatency("recheck", time.Since(start).Seconds()) }()

	spreadNow := req.PriceA - req.Stats.Beta*req.PriceB
	z := analytics.ZScore(spreadNow, req.Stats.SpreadMean, req.Stats.SpreadStdev)
	signal := analytics.DeriveSignal(z, req.EntryThresholdZ)

	return &models.RecheckResult{
		SpreadNow:      spreadNow,
		ZScoreNow:      z,
		TradeSignal:    signal,
		ConfidenceNote: analytics.ConfidenceNote(signal, z),
	}, nil
}

// ParseSeries extracts the positive numbers from free-form text.
func (p *PairAnalysis) ParseSeries(req *models.ParseSeriesRequest) models.ParsedSeries {
	values := analytics.ParseSeries(req.Text)
	return models.ParsedSeries{Values: values, Count: len(values)}
}

// ZScore standardises x against mean and stdev.
func (p *PairAnalysis) ZScore(req *models.ZScoreRequest) float64 {
	return analytics.ZScore(req.X, req.Mean, req.Stdev)
}

func (p *PairAnalysis) buildInputs(req *models.AnalyzeRequest) (models.AnalysisInputs, error) {
	seriesA := resolveSeries(req.HistoricalA, req.HistoricalAText)
	seriesB := resolveSeries(req.HistoricalB, req.HistoricalBText)
	if len(seriesA) == 0 {
		return models.AnalysisInputs{}, &analytics.ValidationError{Field: "historicalA", Reason: missingHistoryReason}
	}
	if len(seriesB) == 0 {
		return models.AnalysisInputs{}, &analytics.ValidationError{Field: "historicalB", Reason: missingHistoryReason}
	}
	if p.maxPoints > 0 && (len(seriesA) > p.maxPoints || len(seriesB) > p.maxPoints) {
		return models.AnalysisInputs{}, &analytics.ValidationError{
			Field:  "historicalA",
			Reason: fmt.Sprintf("At most %d data points are accepted", p.maxPoints),
		}
	}

	exitZ := 0.0
	if req.ExitZ != nil {
		exitZ = *req.ExitZ
	}
	softExitZ := defaultSoftExitZ
	if req.SoftExitZ != nil {
		softExitZ = *req.SoftExitZ
	}

	return models.AnalysisInputs{
		AssetA:           assetName(req.AssetA, defaultAssetA),
		AssetB:           assetName(req.AssetB, defaultAssetB),
		PriceA:           req.PriceA,
		PriceB:           req.PriceB,
		HistoricalA:      seriesA,
		HistoricalB:      seriesB,
		LookbackN:        req.LookbackN,
		PortfolioSizeUsd: req.PortfolioSizeUsd,
		RiskPct:          req.RiskPct,
		MaxLeverageCap:   req.MaxLeverageCap,
		EntryThresholdZ:  req.EntryThresholdZ,
		ExitZ:            exitZ,
		SoftExitZ:        softExitZ,
		MaxHoldingDays:   req.MaxHoldingDays,
		StopLossMult:     req.StopLossMult,
		TakeProfitMult:   req.TakeProfitMult,
		HedgeMethod:      models.HedgeMethod(req.HedgeMethod),
	}, nil
}

func (p *PairAnalysis) reject(req *models.AnalyzeRequest, err error) {
	p.metrics.RecordError("validation")
	p.logger.Warn("analysis rejected",
		applogger.String("asset_a", req.AssetA),
		applogger.String("asset_b", req.AssetB),
		applogger.Error(err),
	)
}

// resolveSeries prefers the numeric array and falls back to parsing text.
func resolveSeries(values []float64, text string) []float64 {
	if len(values) > 0 {
		return values
	}
	return analytics.ParseSeries(text)
}

func assetName(name, fallback string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return fallback
}

// AsValidationError unwraps err to the engine's validation error, if any.
func AsValidationError(err error) (*analytics.ValidationError, bool) {
	var ve *analytics.ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
