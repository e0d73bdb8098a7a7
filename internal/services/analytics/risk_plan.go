package analytics

import (
	"fmt"

	"PairScope/internal/domain/models"
)

// RiskPlanInputs are the fields of AnalysisInputs the risk plan reads.
type RiskPlanInputs struct {
	PortfolioSizeUsd float64
	RiskPct          float64
	ExitZ            float64
	SoftExitZ        float64
	MaxHoldingDays   int
	StopLossMult     float64
	TakeProfitMult   float64
}

func riskPlanInputsFrom(in models.AnalysisInputs) RiskPlanInputs {
	return RiskPlanInputs{
		PortfolioSizeUsd: in.PortfolioSizeUsd,
		RiskPct:          in.RiskPct,
		ExitZ:            in.ExitZ,
		SoftExitZ:        in.SoftExitZ,
		MaxHoldingDays:   in.MaxHoldingDays,
		StopLossMult:     in.StopLossMult,
		TakeProfitMult:   in.TakeProfitMult,
	}
}

// BuildRiskPlan assembles the five exit rules, in fixed order, for a spread with
// the given standard deviation. The rules are the same for either direction.
func BuildRiskPlan(in RiskPlanInputs, spreadStdev float64) models.AnalysisRiskPlan {
	riskBudget := RiskBudgetUsd(in.PortfolioSizeUsd, in.RiskPct)
	stopLossDist := in.StopLossMult * spreadStdev
	takeProfitDist := in.TakeProfitMult * spreadStdev

	rules := []models.ExitRule{
		{
			Title:       "Target Exit (Profit)",
			Description: fmt.Sprintf("Exit when spread returns to normal (Z-score reaches %s)", formatNumber(in.ExitZ)),
			Detail:      "This is your main profit target - when the spread reverts to its average",
			Type:        models.ExitProfit,
		},
		{
			Title:       "Soft Exit (Partial Profit)",
			Description: fmt.Sprintf("Consider taking partial profits when spread gets close to normal (Z-score ≤ %s)", formatNumber(in.SoftExitZ)),
			Detail:      "The spread is moving back toward normal - good time to lock in some gains",
			Type:        models.ExitPartial,
		},
		{
			Title:       "Time Limit",
			Description: fmt.Sprintf("Exit after %d days regardless of profit/loss", in.MaxHoldingDays),
			Detail:      "For airdrop farming: Hold positions for the required period, but don't exceed this limit. Monitor funding costs daily.",
			Type:        models.ExitTime,
		},
		{
			Title:       "Stop Loss (Risk Control)",
			Description: fmt.Sprintf("Exit immediately if spread moves %s against you", fixed2(stopLossDist)),
			Detail:      fmt.Sprintf("This limits your loss to $%s (%s%% of portfolio)", fixed2(riskBudget), formatNumber(in.RiskPct)),
			Type:        models.ExitStop,
		},
		{
			Title:       "Take Profit (Quick Win)",
			Description: fmt.Sprintf("Consider exiting early if spread moves %s in your favor", fixed2(takeProfitDist)),
			Detail:      "Lock in profits if the spread moves strongly in your direction before reaching target",
			Type:        models.ExitProfit,
		},
	}

	return models.AnalysisRiskPlan{
		RiskBudgetUsd:            riskBudget,
		StopLossSpreadDistance:   stopLossDist,
		TakeProfitSpreadDistance: takeProfitDist,
		ExitRules:                rules,
		HoldingTimeGuidance: fmt.Sprintf("For airdrop farming: These delta-neutral positions are designed to minimize market risk while maintaining eligibility. "+
			"Monitor funding rates hourly/daily - high funding costs can erode profits. Exit immediately if any stop loss conditions are met. "+
			"Hold for %d days maximum or until airdrop requirements are met.", in.MaxHoldingDays),
	}
}
