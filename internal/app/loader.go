package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_radar/internal/domain"
)

var csvColumns = []string{"ReviewId", "Location", "Timestamp", "ReviewBody"}

// LoadCSV reads the startup review dump and scores every body, bounded to
// workers concurrent scorings. Output preserves file order. Rows with bad
// timestamps or unknown locations are skipped with a warning rather than
// aborting startup.
func LoadCSV(ctx context.Context, path string, scorer domain.Scorer, workers int) ([]domain.Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reviews csv: %w", err)
	}
	defer f.Close()
	return loadCSV(ctx, f, scorer, workers)
}

func loadCSV(ctx context.Context, r io.Reader, scorer domain.Scorer, workers int) ([]domain.Review, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("reviews csv: missing column %q", col)
		}
	}

	var out []domain.Review
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("skipping malformed csv row")
			continue
		}

		ts, err := time.ParseInLocation(TimestampLayout, rec[idx["Timestamp"]], time.UTC)
		if err != nil {
			log.Warn().Err(err).Int("line", line).Msg("skipping row with bad timestamp")
			continue
		}
		loc := rec[idx["Location"]]
		if !domain.AllowedLocation(loc) {
			log.Warn().Str("location", loc).Int("line", line).Msg("skipping row with unknown location")
			continue
		}

		out = append(out, domain.Review{
			ID:        rec[idx["ReviewId"]],
			Location:  loc,
			Timestamp: ts,
			Body:      rec[idx["ReviewBody"]],
		})
	}

	if err := scoreAll(ctx, out, scorer, workers); err != nil {
		return nil, err
	}
	return out, nil
}

// scoreAll fills in sentiment for every record under a semaphore bound.
// Each goroutine writes only its own element, so no lock is needed.
func scoreAll(ctx context.Context, rs []domain.Review, scorer domain.Scorer, workers int) error {
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for i := range rs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}
		wg.Add(1)
		go func(r *domain.Review) {
			defer wg.Done()
			defer sem.Release(1)
			r.Sentiment = scorer.Score(r.Body)
		}(&rs[i])
	}

	wg.Wait()
	return nil
}
