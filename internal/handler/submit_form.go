package handler

import (
	"net/http"

	"github.com/avc-dev/shorty-web/internal/model"
	"go.uber.org/zap"
)

// SubmitForm обрабатывает отправку формы createShortUrlForm.
// Страница всегда отрисовывается заново со статусом 200, форма остается доступной
// для повторной отправки при любой ошибке.
func (h *Handler) SubmitForm(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		h.logger.Warn("failed to parse form",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event := model.SubmitEvent{
		URL:        req.PostForm.Get("url"),
		ExpiryCode: req.PostForm.Get("expiryCode"),
		Locale:     req.Header.Get("Accept-Language"),
	}

	view, err := h.usecase.Submit(req.Context(), event)
	if err != nil {
		h.logger.Debug("form submission failed", zap.Error(err))
	}

	h.renderPage(w, req, http.StatusOK, view)
}
