package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shorty-web/internal/model"
	"github.com/avc-dev/shorty-web/internal/usecase"
	"go.uber.org/zap"
)

// SubmitJSON принимает ShortenRequest в JSON и возвращает RenderView.
// Нужен клиентам, которые рисуют страницу сами.
func (h *Handler) SubmitJSON(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	view, err := h.usecase.Submit(req.Context(), model.SubmitEvent{
		URL:        request.URL,
		ExpiryCode: request.ExpiryCode,
		Locale:     req.Header.Get("Accept-Language"),
	})

	h.writeJSON(w, statusForError(err), view)
}

// statusForError маппинг ошибок usecase на HTTP статусы
func statusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, usecase.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrBackend), errors.Is(err, usecase.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
