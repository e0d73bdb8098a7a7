package models

// HedgeMethod selects how the hedge ratio between asset A and asset B is estimated.
type HedgeMethod string

const (
	HedgeRegression HedgeMethod = "regression"
	HedgeVolRatio   HedgeMethod = "volRatio"
)

// TradeSignal is the directional call derived from the current z-score.
type TradeSignal string

const (
	SignalShortALongB TradeSignal = "SHORT_A_LONG_B"
	SignalLongAShortB TradeSignal = "LONG_A_SHORT_B"
	SignalNone        TradeSignal = "NO_SIGNAL"
)

// Direction is the side of a single position leg.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// ExitRuleType tags an exit rule by category.
type ExitRuleType string

const (
	ExitProfit  ExitRuleType = "profit"
	ExitPartial ExitRuleType = "partial"
	ExitTime    ExitRuleType = "time"
	ExitStop    ExitRuleType = "stop"
)

// AnalysisInputs holds everything a single pair analysis needs.
// LookbackN of 0 means the full aligned history is used.
type AnalysisInputs struct {
	AssetA           string      `json:"assetA"`
	AssetB           string      `json:"assetB"`
	PriceA           float64     `json:"priceA"`
	PriceB           float64     `json:"priceB"`
	HistoricalA      []float64   `json:"historicalA"`
	HistoricalB      []float64   `json:"historicalB"`
	LookbackN        int         `json:"lookbackN,omitempty"`
	PortfolioSizeUsd float64     `json:"portfolioSizeUsd"`
	RiskPct          float64     `json:"riskPct"`
	MaxLeverageCap   float64     `json:"maxLeverageCap"`
	EntryThresholdZ  float64     `json:"entryThresholdZ"`
	ExitZ            float64     `json:"exitZ"`
	SoftExitZ        float64     `json:"softExitZ"`
	MaxHoldingDays   int         `json:"maxHoldingDays"`
	StopLossMult     float64     `json:"stopLossMult"`
	TakeProfitMult   float64     `json:"takeProfitMult"`
	HedgeMethod      HedgeMethod `json:"hedgeMethod"`
}

// ResolvedInputs echoes AnalysisInputs without the raw series and with the lookback resolved.
type ResolvedInputs struct {
	AssetA           string      `json:"assetA"`
	AssetB           string      `json:"assetB"`
	PriceA           float64     `json:"priceA"`
	PriceB           float64     `json:"priceB"`
	LookbackN        int         `json:"lookbackN"`
	PortfolioSizeUsd float64     `json:"portfolioSizeUsd"`
	RiskPct          float64     `json:"riskPct"`
	MaxLeverageCap   float64     `json:"maxLeverageCap"`
	EntryThresholdZ  float64     `json:"entryThresholdZ"`
	ExitZ            float64     `json:"exitZ"`
	SoftExitZ        float64     `json:"softExitZ"`
	MaxHoldingDays   int         `json:"maxHoldingDays"`
	StopLossMult     float64     `json:"stopLossMult"`
	TakeProfitMult   float64     `json:"takeProfitMult"`
	HedgeMethod      HedgeMethod `json:"hedgeMethod"`
}

type AnalysisStats struct {
	Correlation float64 `json:"correlation"`
	Beta        float64 `json:"beta"`
	SpreadMean  float64 `json:"spreadMean"`
	SpreadStdev float64 `json:"spreadStdev"`
	SpreadNow   float64 `json:"spreadNow"`
	ZScoreNow   float64 `json:"zScoreNow"`
}

type AnalysisSignal struct {
	TradeSignal    TradeSignal `json:"tradeSignal"`
	ConfidenceNote string      `json:"confidenceNote"`
	Warnings       []string    `json:"warnings"`
}

// PositionLeg is one side of the pair position. Optional fields are set whenever sizing succeeds.
type PositionLeg struct {
	Direction         Direction `json:"direction"`
	UsdNotional       float64   `json:"usdNotional"`
	Units             float64   `json:"units"`
	LeverageX         *float64  `json:"leverageX,omitempty"`
	StopLossPrice     *float64  `json:"stopLossPrice,omitempty"`
	TakeProfitPrice   *float64  `json:"takeProfitPrice,omitempty"`
	StopLossPercent   *float64  `json:"stopLossPercent,omitempty"`
	TakeProfitPercent *float64  `json:"takeProfitPercent,omitempty"`
}

type AnalysisPositions struct {
	AssetA             PositionLeg `json:"assetA"`
	AssetB             PositionLeg `json:"assetB"`
	GrossNotionalUsd   float64     `json:"grossNotionalUsd"`
	SuggestedLeverageX float64     `json:"suggestedLeverageX"`
}

type ExitRule struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Detail      string       `json:"detail"`
	Type        ExitRuleType `json:"type"`
}

type AnalysisRiskPlan struct {
	RiskBudgetUsd            float64    `json:"riskBudgetUsd"`
	StopLossSpreadDistance   float64    `json:"stopLossSpreadDistance"`
	TakeProfitSpreadDistance float64    `json:"takeProfitSpreadDistance"`
	ExitRules                []ExitRule `json:"exitRules"`
	HoldingTimeGuidance      string     `json:"holdingTimeGuidance"`
}

// AnalysisResult is the complete output of one analysis run.
// Positions is nil when the hedge ratio or spread volatility cannot support sizing.
// Foils is attached by callers; the engine never sets it.
type AnalysisResult struct {
	Inputs    ResolvedInputs     `json:"inputs"`
	Stats     AnalysisStats      `json:"stats"`
	Signal    AnalysisSignal     `json:"signal"`
	Positions *AnalysisPositions `json:"positions"`
	RiskPlan  AnalysisRiskPlan   `json:"riskPlan"`
	Foils     *Sentiment         `json:"foils,omitempty"`
}
