package repository

import (
	"context"
	"time"
)

// Metrics records analysis outcomes. Implementations must be safe for concurrent use.
type Metrics interface {
	RecordSignal(signal string)
	RecordWarning(kind string)
	RecordSkippedPositions()
	RecordError(kind string)
	RecordLastZScore(pair string, z float64)
	RecordLatency(op string, seconds float64)
}

// ResultCache stores serialized analysis results by input fingerprint.
type ResultCache interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
