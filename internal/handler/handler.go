package handler

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/avc-dev/shorty-web/internal/middleware"
	"github.com/avc-dev/shorty-web/internal/model"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:generate mockery --name FormUsecase --output ../mocks --outpkg mocks --filename mock_FormUsecase.go --with-expecter
//go:generate mockery --name Pinger --output ../mocks --outpkg mocks --filename mock_Pinger.go --with-expecter

// FormUsecase определяет интерфейс обработки отправки формы
type FormUsecase interface {
	Submit(ctx context.Context, event model.SubmitEvent) (model.RenderView, error)
}

// Pinger определяет интерфейс проверки доступности бэкенда
type Pinger interface {
	Ping(ctx context.Context) error
}

// ExpiryOption вариант срока жизни короткой ссылки в форме.
// Значение кода передается бэкенду как есть.
type ExpiryOption struct {
	Code  string
	Label string
}

// ExpiryOptions коды, которые понимает бэкенд shorty
var ExpiryOptions = []ExpiryOption{
	{Code: "0", Label: "1 minute"},
	{Code: "1", Label: "1 hour"},
	{Code: "2", Label: "1 day"},
	{Code: "3", Label: "1 year"},
}

type Handler struct {
	usecase FormUsecase
	logger  *zap.Logger
	pinger  Pinger
	page    *template.Template
}

// New создает обработчики веб-интерфейса
func New(usecase FormUsecase, logger *zap.Logger, pinger Pinger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		pinger:  pinger,
		page:    template.Must(template.ParseFS(templatesFS, "templates/index.html")),
	}
}

type pageData struct {
	View          model.RenderView
	CSRFToken     string
	QRCode        template.URL
	ExpiryOptions []ExpiryOption
}

// renderPage отрисовывает страницу с формой по набору инструкций view
func (h *Handler) renderPage(w http.ResponseWriter, req *http.Request, status int, view model.RenderView) {
	token, _ := middleware.FormTokenFromContext(req.Context())
	// data URI QR кода собран нами из PNG, ему можно доверять
	data := pageData{
		View:          view,
		CSRFToken:     token,
		QRCode:        template.URL(view.QRCode),
		ExpiryOptions: ExpiryOptions,
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}
