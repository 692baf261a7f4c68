package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/Vaaraprasad44/movies2/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// errorResponse mirrors the {"detail": ...} error shape existing
// frontends already consume.
type errorResponse struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorResponse{Detail: detail})
}

// parseIDParam extracts the integer {id} path parameter.
func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return id, nil
}

// parsePagination reads page (>= 1, default 1) and size (1..100, default
// 20) from the query string.
func parsePagination(r *http.Request) (page, size int, err error) {
	page, size = 1, defaultPageSize
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
	}
	if raw := q.Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size < 1 || size > maxPageSize {
			return 0, 0, fmt.Errorf("size must be between 1 and %d", maxPageSize)
		}
	}
	return page, size, nil
}

// parseFilters builds the filter set from the query string. Unset
// parameters stay nil so they impose no constraint; a malformed value is
// reported instead of silently ignored.
func parseFilters(r *http.Request) (*models.MovieFilters, error) {
	q := r.URL.Query()
	f := &models.MovieFilters{}

	if v := q.Get("search"); v != "" {
		f.Search = &v
	}
	if vs, ok := q["genres"]; ok {
		f.Genres = vs
	}

	var err error
	if f.YearFrom, err = intParam(q.Get("year_from"), "year_from"); err != nil {
		return nil, err
	}
	if f.YearTo, err = intParam(q.Get("year_to"), "year_to"); err != nil {
		return nil, err
	}
	if f.RatingFrom, err = floatParam(q.Get("rating_from"), "rating_from"); err != nil {
		return nil, err
	}
	if f.RatingTo, err = floatParam(q.Get("rating_to"), "rating_to"); err != nil {
		return nil, err
	}
	if f.RuntimeFrom, err = intParam(q.Get("runtime_from"), "runtime_from"); err != nil {
		return nil, err
	}
	if f.RuntimeTo, err = intParam(q.Get("runtime_to"), "runtime_to"); err != nil {
		return nil, err
	}
	if v := q.Get("language"); v != "" {
		f.Language = &v
	}
	if v := q.Get("is_favorite"); v != "" {
		fav, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid is_favorite parameter")
		}
		f.IsFavorite = &fav
	}
	if f.PersonalRatingFrom, err = floatParam(q.Get("personal_rating_from"), "personal_rating_from"); err != nil {
		return nil, err
	}
	if f.PersonalRatingTo, err = floatParam(q.Get("personal_rating_to"), "personal_rating_to"); err != nil {
		return nil, err
	}
	return f, nil
}

func intParam(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &v, nil
}

func floatParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &v, nil
}

// totalPages computes ceil(total/size) with a floor of one page.
func totalPages(total, size int) int {
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}
