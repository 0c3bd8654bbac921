package handlers

import (
	"net/http"
)

// GetStatsHandler godoc
// @Summary Aggregate counts over bakeries and baked goods
// @Tags stats
// @Produce json
// @Success 200 {object} repo.Stats
// @Failure 500 {string} string "Internal error"
// @Router /stats [get]
func (h *Handler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	s, err := h.statsRepo.GetStats(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to fetch stats", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
