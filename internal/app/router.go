package app

import (
	"net/http"

	"github.com/avc-dev/shorty-web/internal/handler"
	"github.com/avc-dev/shorty-web/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения. csrf может быть nil,
// тогда форма не защищается токеном.
func newRouter(h *handler.Handler, logger *zap.Logger, csrf *middleware.CSRFMiddleware) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Gzip(logger))

	// Routes
	r.Get("/ping", h.Ping)
	r.Post("/api/submit", h.SubmitJSON)

	// Форма
	if csrf != nil {
		r.With(csrf.Issue).Get("/", h.Index)
		r.With(csrf.Protect(http.HandlerFunc(h.SessionExpired))).Post("/", h.SubmitForm)
	} else {
		r.Get("/", h.Index)
		r.Post("/", h.SubmitForm)
	}

	return r
}
