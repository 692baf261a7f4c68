package handlers

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/Vaaraprasad44/movies2/models"
)

// ListMovies returns a page of movies matching the optional filter query
// parameters.
//
// GET /api/movies
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	page, size, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filters, err := parseFilters(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	movies, total := h.store.GetMoviesPaginated(page, size, filters)
	respondJSON(w, http.StatusOK, models.PaginatedMovieResponse{
		Items: movies,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: totalPages(total, size),
	})
}

// SearchMovies is the search-only listing: the q parameter matches
// against title, overview, cast and crew.
//
// GET /api/movies/search
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "missing q parameter")
		return
	}
	page, size, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	movies, total := h.store.GetMoviesPaginated(page, size, &models.MovieFilters{Search: &q})
	respondJSON(w, http.StatusOK, models.PaginatedMovieResponse{
		Items: movies,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: totalPages(total, size),
	})
}

// FavoriteMovies lists only movies flagged as favorites.
//
// GET /api/movies/favorites
func (h *Handler) FavoriteMovies(w http.ResponseWriter, r *http.Request) {
	page, size, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	fav := true
	movies, total := h.store.GetMoviesPaginated(page, size, &models.MovieFilters{IsFavorite: &fav})
	respondJSON(w, http.StatusOK, models.PaginatedMovieResponse{
		Items: movies,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: totalPages(total, size),
	})
}

// GetMovie returns a single movie by ID.
//
// GET /api/movies/{id}
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	movie, ok := h.store.GetMovieByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Movie not found")
		return
	}
	respondJSON(w, http.StatusOK, movie)
}

// CreateMovie adds a movie and returns its new identifier.
//
// POST /api/movies
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var cmd models.CreateMovieCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id := h.store.CreateMovie(cmd)
	respondJSON(w, http.StatusOK, id)
}

// UpdateMovie applies a partial update. Fields absent from the body are
// left unchanged.
//
// PUT /api/movies/{id}
func (h *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var cmd models.UpdateMovieCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !h.store.UpdateMovie(id, cmd) {
		respondError(w, http.StatusNotFound, "Movie not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteMovie removes a movie by ID.
//
// DELETE /api/movies/{id}
func (h *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.store.DeleteMovie(id) {
		respondError(w, http.StatusNotFound, "Movie not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ToggleFavorite flips the favorite flag and returns the new state.
//
// POST /api/movies/{id}/favorite
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	movie, ok := h.store.GetMovieByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Movie not found")
		return
	}

	next := !movie.IsFavorite
	if !h.store.UpdateMovie(id, models.UpdateMovieCommand{IsFavorite: &next}) {
		respondError(w, http.StatusInternalServerError, "Failed to update movie")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"is_favorite": next})
}
