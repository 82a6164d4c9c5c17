package domain

import (
	"context"
	"time"
)

// Scorer wraps the polarity-analysis capability. Scoring is pure with
// respect to its input: the same text always yields the same bundle.
type Scorer interface {
	Score(text string) Sentiment
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ReviewFilter is a parsed, validated set of optional query predicates.
// Start is the first instant of start_date. End is midnight of end_date:
// a review later that same day is excluded unless its time-of-day is
// exactly 00:00:00 (matches the original service's boundary).
type ReviewFilter struct {
	Location *string
	Start    *time.Time
	End      *time.Time
}
