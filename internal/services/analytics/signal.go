package analytics

import (
	"math"

	"PairScope/internal/domain/models"
)

const (
	noteNoSignal = "No entry signal. Current Z-score is within entry threshold."
	noteStrong   = "Strong signal. Z-score indicates significant deviation."
	noteModerate = "Moderate signal. Z-score indicates notable deviation."
	noteWeak     = "Weak signal. Z-score is near entry threshold."
)

// DeriveSignal thresholds the z-score. A wide spread (z above entry) shorts A and longs B.
func DeriveSignal(z, entryThresholdZ float64) models.TradeSignal {
	switch {
	case z >= entryThresholdZ:
		return models.SignalShortALongB
	case z <= -entryThresholdZ:
		return models.SignalLongAShortB
	default:
		return models.SignalNone
	}
}

// ConfidenceNote classifies signal strength. It is informational only.
func ConfidenceNote(signal models.TradeSignal, z float64) string {
	if signal == models.SignalNone {
		return noteNoSignal
	}
	absZ := math.Abs(z)
	switch {
	case absZ >= 3:
		return noteStrong
	case absZ >= 2:
		return noteModerate
	default:
		return noteWeak
	}
}

// PositionDirection resolves the direction used for sizing. Without a signal the
// sign of z picks a reference direction so a position can always be displayed.
func PositionDirection(signal models.TradeSignal, z float64) models.TradeSignal {
	switch signal {
	case models.SignalShortALongB, models.SignalLongAShortB:
		return signal
	}
	if z >= 0 {
		return models.SignalShortALongB
	}
	return models.SignalLongAShortB
}
