package handler

import (
	"net/http"

	"github.com/avc-dev/shorty-web/internal/model"
)

// Index отдает пустую форму
func (h *Handler) Index(w http.ResponseWriter, req *http.Request) {
	h.renderPage(w, req, http.StatusOK, model.RenderView{})
}
