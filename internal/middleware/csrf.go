package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/avc-dev/shorty-web/internal/service"
	"go.uber.org/zap"
)

const (
	// FormTokenCookie кука с CSRF токеном формы
	FormTokenCookie = "form_token"
	// FormTokenField скрытое поле формы с тем же токеном
	FormTokenField = "csrfToken"
)

type formTokenKey struct{}

// CSRFMiddleware защищает форму сокращения URL по схеме double submit cookie
type CSRFMiddleware struct {
	tokens *service.FormTokenService
	logger *zap.Logger
}

// NewCSRFMiddleware создает новый экземпляр CSRFMiddleware
func NewCSRFMiddleware(tokens *service.FormTokenService, logger *zap.Logger) *CSRFMiddleware {
	return &CSRFMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// Issue кладет действующий токен в контекст запроса. Если в куке токена нет
// или он недействителен, выпускается новый.
func (m *CSRFMiddleware) Issue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.tokenFromCookie(r)
		if err != nil {
			token, err = m.tokens.Issue()
			if err != nil {
				m.logger.Error("failed to issue form token", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			m.setCookie(w, token)
		}

		next.ServeHTTP(w, r.WithContext(WithFormToken(r.Context(), token)))
	})
}

// Protect пропускает отправку формы, только если токен из поля формы
// совпадает с токеном из куки и подпись токена верна.
// Если кука пропала или не проходит проверку (истек срок, сменился секрет
// после перезапуска), выпускается новый токен и запрос уходит в expired:
// форма отрисовывается заново и ее можно отправить еще раз.
func (m *CSRFMiddleware) Protect(expired http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookieToken, err := m.tokenFromCookie(r)
			if err != nil {
				m.logger.Info("form session expired, issuing new token",
					zap.Error(err),
					zap.String("remote_addr", r.RemoteAddr),
				)
				token, issueErr := m.tokens.Issue()
				if issueErr != nil {
					m.logger.Error("failed to issue form token", zap.Error(issueErr))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				m.setCookie(w, token)
				expired.ServeHTTP(w, r.WithContext(WithFormToken(r.Context(), token)))
				return
			}

			formToken := r.PostFormValue(FormTokenField)
			if subtle.ConstantTimeCompare([]byte(formToken), []byte(cookieToken)) != 1 {
				m.logger.Warn("form token mismatch", zap.String("remote_addr", r.RemoteAddr))
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithFormToken(r.Context(), cookieToken)))
		})
	}
}

func (m *CSRFMiddleware) tokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(FormTokenCookie)
	if err != nil {
		return "", err
	}
	if _, err := m.tokens.Verify(cookie.Value); err != nil {
		return "", err
	}
	return cookie.Value, nil
}

func (m *CSRFMiddleware) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FormTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(service.FormTokenTTL.Seconds()),
	})
}

// WithFormToken кладет CSRF токен в контекст
func WithFormToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, formTokenKey{}, token)
}

// FormTokenFromContext извлекает CSRF токен из контекста запроса
func FormTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(formTokenKey{}).(string)
	return token, ok
}
