package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/hearth-app/hearth/internal/logger"
	"github.com/hearth-app/hearth/internal/utils"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the storage backend answers within a short deadline.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Error("readiness check", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
