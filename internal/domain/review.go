package domain

import "time"

// Sentiment is the polarity bundle computed for a review body.
// Compound is in [-1, 1]; the other three are non-negative and, by
// convention of the scoring capability, sum to 1.
type Sentiment struct {
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Review is immutable after construction. Sentiment is computed eagerly
// when the record is created, so the read path never mutates shared state.
type Review struct {
	ID        string
	Location  string
	Timestamp time.Time
	Body      string
	Sentiment Sentiment
}
