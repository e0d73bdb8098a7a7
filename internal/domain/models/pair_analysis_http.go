package models

// Requests for pair analysis HTTP endpoints. Defaults mirror the dashboard form.

type AnalyzeRequest struct {
	AssetA           string     `json:"assetA" default:"A" validate:"max=32"`
	AssetB           string     `json:"assetB" default:"B" validate:"max=32"`
	PriceA           float64    `json:"priceA" validate:"gt=0"`
	PriceB           float64    `json:"priceB" validate:"gt=0"`
	HistoricalA      []float64  `json:"historicalA" validate:"omitempty,dive,gt=0"`
	HistoricalB      []float64  `json:"historicalB" validate:"omitempty,dive,gt=0"`
	HistoricalAText  string     `json:"historicalAText"`
	HistoricalBText  string     `json:"historicalBText"`
	LookbackN        int        `json:"lookbackN" validate:"gte=0"`
	PortfolioSizeUsd float64    `json:"portfolioSizeUsd" default:"100000" validate:"gt=0"`
	RiskPct          float64    `json:"riskPct" default:"2" validate:"gt=0,lte=100"`
	MaxLeverageCap   float64    `json:"maxLeverageCap" default:"3" validate:"gt=0"`
	EntryThresholdZ  float64    `json:"entryThresholdZ" default:"2.0" validate:"gt=0"`
	ExitZ            *float64   `json:"exitZ" default:"0.0"`
	SoftExitZ        *float64   `json:"softExitZ" default:"1.0" validate:"omitempty,gte=0"`
	MaxHoldingDays   int        `json:"maxHoldingDays" default:"7" validate:"gte=1"`
	StopLossMult     float64    `json:"stopLossMult" default:"1.5" validate:"gt=0"`
	TakeProfitMult   float64    `json:"takeProfitMult" default:"0.75" validate:"gt=0"`
	HedgeMethod      string     `json:"hedgeMethod" default:"regression" validate:"oneof=regression volRatio"`
	Foils            *Sentiment `json:"foils,omitempty"`
}

// RecheckStats is the subset of a stored AnalysisStats needed to re-score fresh prices.
type RecheckStats struct {
	Beta        float64 `json:"beta"`
	SpreadMean  float64 `json:"spreadMean"`
	SpreadStdev float64 `json:"spreadStdev" validate:"gte=0"`
}

type RecheckRequest struct {
	Stats           RecheckStats `json:"stats"`
	PriceA          float64      `json:"priceA" validate:"gt=0"`
	PriceB          float64      `json:"priceB" validate:"gt=0"`
	EntryThresholdZ float64      `json:"entryThresholdZ" default:"2.0" validate:"gt=0"`
}

type ParseSeriesRequest struct {
	Text string `json:"text" validate:"required"`
}

type ZScoreRequest struct {
	X     float64 `query:"x" json:"x"`
	Mean  float64 `query:"mean" json:"mean"`
	Stdev float64 `query:"stdev" json:"stdev" validate:"gte=0"`
}
