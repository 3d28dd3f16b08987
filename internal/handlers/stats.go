package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"vpapic.dev/internal/analytics"
	"vpapic.dev/internal/errs"
)

const topPaths = 10

// StatsHandler serves visitor aggregates to the site owner
type StatsHandler struct {
	store *analytics.Store
	token string
}

// NewStatsHandler creates a new StatsHandler guarded by a bearer token
func NewStatsHandler(store *analytics.Store, token string) *StatsHandler {
	return &StatsHandler{store: store, token: token}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	given := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(given), []byte(h.token)) != 1 {
		respondErr(w, errs.ErrUnauthorized)
		return
	}

	stats, err := h.store.Stats(r.Context(), topPaths)
	if err != nil {
		respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
