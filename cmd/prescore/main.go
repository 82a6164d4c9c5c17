// prescore scores a reviews CSV offline and emits the same rows with the
// sentiment bundle appended. Useful for eyeballing scores before pointing
// the API at a new dump.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/adapters/vader"
	"review_radar/internal/app"
)

func main() {
	var (
		in      = flag.String("in", "data/reviews.csv", "input reviews csv")
		out     = flag.String("out", "", "output csv (default stdout)")
		workers = flag.Int("workers", 8, "concurrent scorings")
	)
	flag.Parse()

	log.Logger = observability.NewLogger(os.Getenv("APP_ENV"))

	scorer := vader.New()
	reviews, err := app.LoadCSV(context.Background(), *in, scorer, *workers)
	if err != nil {
		log.Fatal().Err(err).Str("path", *in).Msg("load failed")
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Str("path", *out).Msg("create output failed")
		}
		defer f.Close()
		w = f
	}

	cw := csv.NewWriter(w)
	rows := [][]string{{"ReviewId", "Location", "Timestamp", "ReviewBody", "Neg", "Neu", "Pos", "Compound"}}
	for _, r := range reviews {
		rows = append(rows, []string{
			r.ID,
			r.Location,
			r.Timestamp.Format(app.TimestampLayout),
			r.Body,
			fmtScore(r.Sentiment.Negative),
			fmtScore(r.Sentiment.Neutral),
			fmtScore(r.Sentiment.Positive),
			fmtScore(r.Sentiment.Compound),
		})
	}
	if err := cw.WriteAll(rows); err != nil {
		log.Fatal().Err(err).Msg("write output failed")
	}

	log.Info().Int("reviews", len(reviews)).Msg("prescore completed")
}

func fmtScore(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
