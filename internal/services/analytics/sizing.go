package analytics

import (
	"math"

	"PairScope/internal/domain/models"
)

// MinSpreadStdev is the smallest spread volatility positions are sized against.
const MinSpreadStdev = 1e-9

// SizingInputs are the fields of AnalysisInputs the position sizer reads.
type SizingInputs struct {
	PriceA           float64
	PriceB           float64
	PortfolioSizeUsd float64
	RiskPct          float64
	MaxLeverageCap   float64
	StopLossMult     float64
	TakeProfitMult   float64
}

func sizingInputsFrom(in models.AnalysisInputs) SizingInputs {
	return SizingInputs{
		PriceA:           in.PriceA,
		PriceB:           in.PriceB,
		PortfolioSizeUsd: in.PortfolioSizeUsd,
		RiskPct:          in.RiskPct,
		MaxLeverageCap:   in.MaxLeverageCap,
		StopLossMult:     in.StopLossMult,
		TakeProfitMult:   in.TakeProfitMult,
	}
}

// RiskBudgetUsd is the dollar amount the portfolio is willing to lose at the stop.
func RiskBudgetUsd(portfolioSizeUsd, riskPct float64) float64 {
	return portfolioSizeUsd * (riskPct / 100)
}

// CanSize reports whether beta and spread volatility admit a position.
func CanSize(beta, spreadStdev float64) bool {
	return validBeta(beta) && spreadStdev > MinSpreadStdev
}

func validBeta(beta float64) bool {
	return !math.IsNaN(beta) && !math.IsInf(beta, 0) && beta > 0
}

type legPair struct {
	unitsA, unitsB float64
	usdA, usdB     float64
}

func (l legPair) gross() float64 {
	return math.Abs(l.usdA) + math.Abs(l.usdB)
}

// solveLegs derives both legs from the USD notional x of asset B.
// Units of A are beta-weighted against B so the pair stays delta-neutral.
func solveLegs(x, beta, priceA, priceB float64) legPair {
	unitsB := x / priceB
	unitsA := beta * unitsB * priceB / priceA
	return legPair{
		unitsA: unitsA,
		unitsB: unitsB,
		usdA:   unitsA * priceA,
		usdB:   x,
	}
}

// cappedNotionalB solves for the B notional at the leverage cap.
// Gross notional is x*(1+beta), so x never exceeds P*cap/(1+beta).
func cappedNotionalB(in SizingInputs, beta float64) float64 {
	x := in.PortfolioSizeUsd * in.MaxLeverageCap * in.PriceB / (in.PriceB + beta*in.PriceA)
	if limit := in.PortfolioSizeUsd * in.MaxLeverageCap / (1 + beta); limit < x {
		x = limit
	}
	return x
}

type legExit struct {
	stopLossAdjust   float64
	takeProfitAdjust float64
}

// exitAdjustments splits a spread move across both legs in proportion 1/(1+beta^2).
// Short spread (short A, long B) is stopped out when A rises and B falls.
func exitAdjustments(dir models.TradeSignal, beta, stopLossDist, takeProfitDist float64) (a, b legExit) {
	sign := 1.0
	if dir == models.SignalLongAShortB {
		sign = -1.0
	}
	f := 1 / (1 + beta*beta)

	a = legExit{
		stopLossAdjust:   sign * stopLossDist * f / beta,
		takeProfitAdjust: -sign * takeProfitDist * f / beta,
	}
	b = legExit{
		stopLossAdjust:   -sign * stopLossDist * f,
		takeProfitAdjust: sign * takeProfitDist * f,
	}
	return a, b
}

func legDirections(dir models.TradeSignal) (a, b models.Direction) {
	switch dir {
	case models.SignalLongAShortB:
		return models.DirectionLong, models.DirectionShort
	default:
		return models.DirectionShort, models.DirectionLong
	}
}

func buildLeg(direction models.Direction, usd, units, portfolio, price float64, exit legExit) models.PositionLeg {
	leverage := math.Abs(usd) / portfolio
	stopLossPrice := price + exit.stopLossAdjust
	takeProfitPrice := price + exit.takeProfitAdjust
	stopLossPercent := exit.stopLossAdjust / price * 100
	takeProfitPercent := exit.takeProfitAdjust / price * 100

	return models.PositionLeg{
		Direction:         direction,
		UsdNotional:       math.Abs(usd),
		Units:             math.Abs(units),
		LeverageX:         &leverage,
		StopLossPrice:     &stopLossPrice,
		TakeProfitPrice:   &takeProfitPrice,
		StopLossPercent:   &stopLossPercent,
		TakeProfitPercent: &takeProfitPercent,
	}
}

// SizePositions converts the risk budget into two beta-neutral legs and clamps
// gross leverage to the configured cap. It returns nil when beta is not a
// finite positive number, the spread has no volatility, or the stop distance is not positive.
// dir must be SHORT_A_LONG_B or LONG_A_SHORT_B (see PositionDirection).
func SizePositions(in SizingInputs, beta, spreadStdev float64, dir models.TradeSignal) *models.AnalysisPositions {
	if !CanSize(beta, spreadStdev) {
		return nil
	}
	stopLossDist := in.StopLossMult * spreadStdev
	takeProfitDist := in.TakeProfitMult * spreadStdev
	if stopLossDist <= 0 {
		return nil
	}

	// k = 1: the whole risk budget is spent at the stop-loss distance.
	x := RiskBudgetUsd(in.PortfolioSizeUsd, in.RiskPct) * in.PriceB / stopLossDist
	legs := solveLegs(x, beta, in.PriceA, in.PriceB)
	leverage := math.Max(1, legs.gross()/in.PortfolioSizeUsd)

	if leverage > in.MaxLeverageCap {
		leverage = in.MaxLeverageCap
		legs = solveLegs(cappedNotionalB(in, beta), beta, in.PriceA, in.PriceB)
	}

	exitA, exitB := exitAdjustments(dir, beta, stopLossDist, takeProfitDist)
	dirA, dirB := legDirections(dir)

	return &models.AnalysisPositions{
		AssetA:             buildLeg(dirA, legs.usdA, legs.unitsA, in.PortfolioSizeUsd, in.PriceA, exitA),
		AssetB:             buildLeg(dirB, legs.usdB, legs.unitsB, in.PortfolioSizeUsd, in.PriceB, exitB),
		GrossNotionalUsd:   legs.gross(),
		SuggestedLeverageX: leverage,
	}
}
