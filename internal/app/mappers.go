package app

import "review_radar/internal/domain"

// TimestampLayout is the wire format for review timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// ReviewJSON is the wire shape served to clients. Field names and the
// timestamp layout are part of the public contract.
type ReviewJSON struct {
	ReviewID  string           `json:"ReviewId"`
	Location  string           `json:"Location"`
	Timestamp string           `json:"Timestamp"`
	Body      string           `json:"ReviewBody"`
	Sentiment domain.Sentiment `json:"sentiment"`
}

func MapReview(r domain.Review) ReviewJSON {
	return ReviewJSON{
		ReviewID:  r.ID,
		Location:  r.Location,
		Timestamp: r.Timestamp.Format(TimestampLayout),
		Body:      r.Body,
		Sentiment: r.Sentiment,
	}
}

// MapReviews never returns nil so an empty result serializes as [].
func MapReviews(rs []domain.Review) []ReviewJSON {
	out := make([]ReviewJSON, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapReview(r))
	}
	return out
}
