// Package vader adapts the govader polarity analyzer to the domain Scorer
// port. The lexicon is loaded once at construction; Score itself has no
// failure mode.
package vader

import (
	"github.com/jonreiter/govader"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/domain"
)

type Scorer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func New() *Scorer {
	return &Scorer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Score is pure with respect to text: the same body always yields the
// same bundle, which is what makes eager scoring at construction safe.
func (s *Scorer) Score(text string) domain.Sentiment {
	ps := s.sia.PolarityScores(text)
	observability.ObserveScore()
	return domain.Sentiment{
		Negative: ps.Negative,
		Neutral:  ps.Neutral,
		Positive: ps.Positive,
		Compound: ps.Compound,
	}
}
