package handlers

import (
	"net/http"

	"github.com/Vaaraprasad44/movies2/services"
)

// statsScanSize is deliberately oversized so the stats endpoint sees the
// whole library in one page.
const statsScanSize = 99999

// Stats returns library-wide aggregates: totals, favorite and rated
// counts, top genres and the decade distribution.
//
// GET /api/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	movies, total := h.store.GetMoviesPaginated(1, statsScanSize, nil)
	respondJSON(w, http.StatusOK, services.ComputeLibraryStats(movies, total))
}
