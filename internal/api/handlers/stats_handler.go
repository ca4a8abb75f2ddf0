package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nehru-cyber/task-manager/internal/services"
)

type StatsHandler struct {
	stats services.StatsService
}

func NewStatsHandler(stats services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	st, err := h.stats.Stats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
