package handlers

import (
	"context"
	"net/http"
	"time"
)

const indexPage = "<h1>Bakery API</h1>"

// IndexHandler godoc
// @Summary Service banner
// @Tags service
// @Produce html
// @Success 200 {string} string "HTML banner"
// @Router / [get]
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexPage))
}

// HealthHandler godoc
// @Summary Liveness and database reachability
// @Tags service
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			h.requestLogger(r).WithError(err).Warn("health check failed")
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
