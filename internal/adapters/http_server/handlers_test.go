package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	httpserver "review_radar/internal/adapters/http_server"
	"review_radar/internal/app"
	"review_radar/internal/domain"
	"review_radar/internal/storage/memory"
)

// wordScorer gives deterministic bundles so ordering is testable.
type wordScorer struct{}

func (wordScorer) Score(text string) domain.Sentiment {
	switch {
	case strings.Contains(text, "great"):
		return domain.Sentiment{Positive: 0.7, Neutral: 0.3, Compound: 0.8}
	case strings.Contains(text, "awful"):
		return domain.Sentiment{Negative: 0.7, Neutral: 0.3, Compound: -0.6}
	default:
		return domain.Sentiment{Neutral: 1}
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()
	store := memory.New(wordScorer{})
	q := app.NewQueryService(store, nil, 0)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: q, Store: store})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts, store
}

func postReview(t *testing.T, ts *httptest.Server, form url.Values) *http.Response {
	t.Helper()
	res, err := http.Post(ts.URL+"/", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	return res
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func TestGet_InvalidLocation(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/?location=" + url.QueryEscape("Nowhere, Kansas"))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
	if got := readBody(t, res); got != "Invalid location" {
		t.Fatalf("body %q", got)
	}
}

func TestGet_InvalidDateFormat(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/?start_date=01-02-2024")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
	if got := readBody(t, res); got != "Invalid date format" {
		t.Fatalf("body %q", got)
	}
}

func TestGet_EmptyStoreReturnsEmptyArray(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if got := strings.TrimSpace(readBody(t, res)); got != "[]" {
		t.Fatalf("expected [], got %q", got)
	}
}

func TestGet_RankedByCompound(t *testing.T) {
	ts, store := newTestServer(t)
	for _, body := range []string{"awful night", "so-so", "great stay"} {
		if _, err := store.Append("Denver, Colorado", body); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var out []app.ReviewJSON
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()

	if len(out) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(out))
	}
	if out[0].Body != "great stay" || out[2].Body != "awful night" {
		t.Fatalf("wrong order: %q, %q, %q", out[0].Body, out[1].Body, out[2].Body)
	}
}

func TestGet_LocationFilter(t *testing.T) {
	ts, store := newTestServer(t)
	if _, err := store.Append("Denver, Colorado", "great stay"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := store.Append("Tucson, Arizona", "great pool"); err != nil {
		t.Fatalf("append: %v", err)
	}

	res, err := http.Get(ts.URL + "/?location=" + url.QueryEscape("Denver, Colorado"))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var out []app.ReviewJSON
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()

	if len(out) != 1 || out[0].Location != "Denver, Colorado" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestPost_MissingFields(t *testing.T) {
	ts, store := newTestServer(t)

	for _, form := range []url.Values{
		{},
		{"Location": {"Denver, Colorado"}},
		{"ReviewBody": {"great stay"}},
		{"Location": {""}, "ReviewBody": {"great stay"}},
	} {
		res := postReview(t, ts, form)
		if res.StatusCode != http.StatusBadRequest {
			t.Fatalf("form %v: status %d", form, res.StatusCode)
		}
		if got := readBody(t, res); got != "Missing Location or ReviewBody" {
			t.Fatalf("form %v: body %q", form, got)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("store grew on rejected posts: %d", store.Len())
	}
}

func TestPost_InvalidLocationLeavesStoreUnchanged(t *testing.T) {
	ts, store := newTestServer(t)

	res := postReview(t, ts, url.Values{"Location": {"Nowhere"}, "ReviewBody": {"meh"}})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", res.StatusCode)
	}
	if got := readBody(t, res); got != "Invalid location" {
		t.Fatalf("body %q", got)
	}
	if store.Len() != 0 {
		t.Fatalf("store size changed: %d", store.Len())
	}
}

func TestPost_CreatesReview(t *testing.T) {
	ts, store := newTestServer(t)

	res := postReview(t, ts, url.Values{"Location": {"Denver, Colorado"}, "ReviewBody": {"great stay"}})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", res.StatusCode)
	}

	var out app.ReviewJSON
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()

	if out.ReviewID == "" {
		t.Fatal("missing ReviewId")
	}
	if out.Location != "Denver, Colorado" || out.Body != "great stay" {
		t.Fatalf("unexpected payload: %+v", out)
	}
	if _, err := time.Parse(app.TimestampLayout, out.Timestamp); err != nil {
		t.Fatalf("timestamp %q not in wire layout: %v", out.Timestamp, err)
	}
	if out.Sentiment.Compound <= 0 {
		t.Fatalf("expected positive compound, got %f", out.Sentiment.Compound)
	}
	if store.Len() != 1 {
		t.Fatalf("store len %d", store.Len())
	}
}
