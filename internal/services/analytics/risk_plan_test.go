package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PairScope/internal/domain/models"
)

func TestBuildRiskPlan(t *testing.T) {
	plan := BuildRiskPlan(RiskPlanInputs{
		PortfolioSizeUsd: 100000,
		RiskPct:          2,
		ExitZ:            0,
		SoftExitZ:        1,
		MaxHoldingDays:   7,
		StopLossMult:     1.5,
		TakeProfitMult:   0.75,
	}, 10)

	assert.InDelta(t, 2000, plan.RiskBudgetUsd, 1e-9)
	assert.InDelta(t, 15, plan.StopLossSpreadDistance, 1e-9)
	assert.InDelta(t, 7.5, plan.TakeProfitSpreadDistance, 1e-9)

	require.Len(t, plan.ExitRules, 5)
	types := make([]models.ExitRuleType, 0, 5)
	for _, r := range plan.ExitRules {
		types = append(types, r.Type)
	}
	assert.Equal(t, []models.ExitRuleType{
		models.ExitProfit, models.ExitPartial, models.ExitTime, models.ExitStop, models.ExitProfit,
	}, types)

	assert.Equal(t, "Target Exit (Profit)", plan.ExitRules[0].Title)
	assert.Equal(t, "Exit when spread returns to normal (Z-score reaches 0)", plan.ExitRules[0].Description)
	assert.Contains(t, plan.ExitRules[1].Description, "(Z-score ≤ 1)")
	assert.Equal(t, "Exit after 7 days regardless of profit/loss", plan.ExitRules[2].Description)
	assert.Equal(t, "Exit immediately if spread moves 15.00 against you", plan.ExitRules[3].Description)
	assert.Equal(t, "This limits your loss to $2000.00 (2% of portfolio)", plan.ExitRules[3].Detail)
	assert.Equal(t, "Consider exiting early if spread moves 7.50 in your favor", plan.ExitRules[4].Description)
	assert.Contains(t, plan.HoldingTimeGuidance, "Hold for 7 days maximum")
}

func TestBuildRiskPlanFractionalInputs(t *testing.T) {
	plan := BuildRiskPlan(RiskPlanInputs{
		PortfolioSizeUsd: 25000,
		RiskPct:          1.5,
		ExitZ:            0.25,
		SoftExitZ:        0.5,
		MaxHoldingDays:   14,
		StopLossMult:     2,
		TakeProfitMult:   1,
	}, 0.123)

	assert.Contains(t, plan.ExitRules[0].Description, "(Z-score reaches 0.25)")
	assert.Contains(t, plan.ExitRules[1].Description, "(Z-score ≤ 0.5)")
	assert.Contains(t, plan.ExitRules[3].Description, "moves 0.25 against you")
	assert.Equal(t, "This limits your loss to $375.00 (1.5% of portfolio)", plan.ExitRules[3].Detail)
	assert.Contains(t, plan.ExitRules[4].Description, "moves 0.12 in your favor")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "2", formatNumber(2))
	assert.Equal(t, "0.5", formatNumber(0.5))
	assert.Equal(t, "12.00", fixed2(12))
	assert.Equal(t, "1.01", fixed2(1.005))
}
