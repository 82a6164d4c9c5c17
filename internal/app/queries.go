package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"review_radar/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseFilter turns raw query parameters into a typed filter. Empty
// strings mean "not given"; dates must be YYYY-MM-DD.
//
// No allow-list check happens here: filtering on an unrecognized location
// simply yields an empty result. Write-path validation is the caller's
// concern.
func ParseFilter(location, startDate, endDate string) (domain.ReviewFilter, error) {
	var f domain.ReviewFilter
	if location != "" {
		f.Location = &location
	}
	if startDate != "" {
		t, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
		if err != nil {
			return domain.ReviewFilter{}, fmt.Errorf("start_date %q: %w", startDate, domain.ErrInvalidDateFormat)
		}
		f.Start = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
		if err != nil {
			return domain.ReviewFilter{}, fmt.Errorf("end_date %q: %w", endDate, domain.ErrInvalidDateFormat)
		}
		f.End = &t
	}
	return f, nil
}

// FilterAndRank applies the filter predicates over the snapshot in
// insertion order, then sorts by compound score descending. The sort is
// explicitly stable: ties keep their relative insertion order.
//
// The end bound compares against midnight of end_date, not end-of-day. A
// review later that same day is excluded. This asymmetry is part of the
// service's observable contract and is kept on purpose.
func FilterAndRank(reviews []domain.Review, f domain.ReviewFilter) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if f.Location != nil && r.Location != *f.Location {
			continue
		}
		if f.Start != nil && r.Timestamp.Before(*f.Start) {
			continue
		}
		if f.End != nil && r.Timestamp.After(*f.End) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sentiment.Compound > out[j].Sentiment.Compound
	})
	return out
}

// ReviewSource is the subset of store operations the query side needs.
type ReviewSource interface {
	All() []domain.Review
	Version() uint64
}

type QueryService struct {
	store    ReviewSource
	cache    domain.Cache
	cacheTTL time.Duration
}

// NewQueryService wires the pipeline over a store snapshot source. cache
// may be nil; the pipeline is fast enough to run uncached.
func NewQueryService(store ReviewSource, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: store, cache: cache, cacheTTL: ttl}
}

// Search runs the pipeline over the current snapshot. Cached result sets
// are keyed by the store version plus the filter, so appends implicitly
// invalidate them; stale keys age out via TTL.
func (s *QueryService) Search(ctx context.Context, f domain.ReviewFilter) []domain.Review {
	key := s.cacheKey(f)
	if s.cache != nil {
		var cached []domain.Review
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached
		}
	}

	out := FilterAndRank(s.store.All(), f)

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out
}

func (s *QueryService) cacheKey(f domain.ReviewFilter) string {
	var loc, start, end string
	if f.Location != nil {
		loc = *f.Location
	}
	if f.Start != nil {
		start = f.Start.Format(dateLayout)
	}
	if f.End != nil {
		end = f.End.Format(dateLayout)
	}
	return fmt.Sprintf("reviews:v%d:%s|%s|%s", s.store.Version(), loc, start, end)
}
