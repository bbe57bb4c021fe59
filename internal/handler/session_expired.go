package handler

import (
	"net/http"

	"github.com/avc-dev/shorty-web/internal/model"
)

// MessageSessionExpired показывается, когда токен формы устарел и отправка не выполнялась
const MessageSessionExpired = "Your session expired, please submit again."

// SessionExpired отрисовывает форму заново с введенными значениями и новым
// CSRF токеном из контекста. Запрос на бэкенд не отправляется.
func (h *Handler) SessionExpired(w http.ResponseWriter, req *http.Request) {
	// тело могло не разобраться, тогда форма просто будет пустой
	_ = req.ParseForm()

	view := model.RenderView{
		URL:             req.PostForm.Get("url"),
		ExpiryCode:      req.PostForm.Get("expiryCode"),
		ResponseVisible: true,
		ErrorMessage:    MessageSessionExpired,
	}

	h.renderPage(w, req, http.StatusOK, view)
}
