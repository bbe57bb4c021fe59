package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверяет доступность бэкенда shorty
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if h.pinger == nil {
		h.logger.Error("backend pinger is not configured")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := h.pinger.Ping(req.Context()); err != nil {
		h.logger.Error("shorty backend ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
