package models

// RecheckResult re-evaluates a stored spread distribution against fresh spot prices.
type RecheckResult struct {
	SpreadNow      float64     `json:"spreadNow"`
	ZScoreNow      float64     `json:"zScoreNow"`
	TradeSignal    TradeSignal `json:"tradeSignal"`
	ConfidenceNote string      `json:"confidenceNote"`
}

// ParsedSeries is the outcome of parsing free-form price text.
type ParsedSeries struct {
	Values []float64 `json:"values"`
	Count  int       `json:"count"`
}
