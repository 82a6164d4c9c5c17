package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"review_radar/internal/app"
	"review_radar/internal/domain"
)

// ReviewAppender is the write side of the store.
type ReviewAppender interface {
	Append(location, body string) (domain.Review, error)
}

type Handlers struct {
	Q     *app.QueryService
	Store ReviewAppender
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.listReviews)
	s.mux.Post("/", h.createReview)
}

// Error bodies below are the service's public contract; clients match on
// the exact strings.

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	location := q.Get("location")
	if location != "" && !domain.AllowedLocation(location) {
		writeText(w, http.StatusBadRequest, "Invalid location")
		return
	}

	f, err := app.ParseFilter(location, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFormat) {
			writeText(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	results := h.Q.Search(r.Context(), f)
	writeJSON(w, http.StatusOK, app.MapReviews(results))
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "Missing Location or ReviewBody")
		return
	}
	location := r.PostForm.Get("Location")
	body := r.PostForm.Get("ReviewBody")
	if location == "" || body == "" {
		writeText(w, http.StatusBadRequest, "Missing Location or ReviewBody")
		return
	}

	rev, err := h.Store.Append(location, body)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLocation) {
			writeText(w, http.StatusBadRequest, "Invalid location")
			return
		}
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, app.MapReview(rev))
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}
