package models

// SentimentLevel is a coarse market-positioning reading.
type SentimentLevel string

const (
	SentimentBullish SentimentLevel = "Bullish"
	SentimentNeutral SentimentLevel = "Neutral"
	SentimentBearish SentimentLevel = "Bearish"
)

// Sentiment is the funding / open-interest / long-short annotation computed
// outside the engine and attached to a result as-is.
type Sentiment struct {
	OI         SentimentLevel `json:"oi" validate:"oneof=Bullish Neutral Bearish"`
	FR         SentimentLevel `json:"fr" validate:"oneof=Bullish Neutral Bearish"`
	LS         SentimentLevel `json:"ls" validate:"oneof=Bullish Neutral Bearish"`
	Overall    SentimentLevel `json:"overall" validate:"oneof=Bullish Neutral Bearish"`
	Confidence float64        `json:"confidence" validate:"gte=0,lte=100"`
}
