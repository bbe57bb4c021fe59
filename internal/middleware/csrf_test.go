package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/shorty-web/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tokenEchoHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := FormTokenFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(token))
	})
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCSRF_IssueSetsCookie(t *testing.T) {
	// Arrange
	tokens := service.NewFormTokenService("secret")
	m := NewCSRFMiddleware(tokens, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	// Act
	m.Issue(tokenEchoHandler(t)).ServeHTTP(rec, req)

	// Assert
	resp := rec.Result()
	defer resp.Body.Close()

	require.Len(t, resp.Cookies(), 1)
	cookie := resp.Cookies()[0]
	assert.Equal(t, FormTokenCookie, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, cookie.Value, rec.Body.String())

	_, err := tokens.Verify(cookie.Value)
	assert.NoError(t, err)
}

func TestCSRF_IssueReusesValidCookie(t *testing.T) {
	tokens := service.NewFormTokenService("secret")
	token, err := tokens.Issue()
	require.NoError(t, err)

	m := NewCSRFMiddleware(tokens, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: FormTokenCookie, Value: token})
	rec := httptest.NewRecorder()

	m.Issue(tokenEchoHandler(t)).ServeHTTP(rec, req)

	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, token, rec.Body.String())
}

func TestCSRF_IssueReplacesForeignCookie(t *testing.T) {
	foreign, err := service.NewFormTokenService("other").Issue()
	require.NoError(t, err)

	m := NewCSRFMiddleware(service.NewFormTokenService("secret"), zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: FormTokenCookie, Value: foreign})
	rec := httptest.NewRecorder()

	m.Issue(tokenEchoHandler(t)).ServeHTTP(rec, req)

	require.Len(t, rec.Result().Cookies(), 1)
	assert.NotEqual(t, foreign, rec.Body.String())
}

// expiredHandler отвечает токеном из контекста с префиксом, чтобы отличать его от next
func expiredHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := FormTokenFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte("expired:" + token))
	})
}

func TestCSRF_Protect(t *testing.T) {
	tokens := service.NewFormTokenService("secret")
	token, err := tokens.Issue()
	require.NoError(t, err)
	other, err := tokens.Issue()
	require.NoError(t, err)

	tests := []struct {
		name           string
		cookie         string
		field          string
		expectedStatus int
	}{
		{name: "matching token", cookie: token, field: token, expectedStatus: http.StatusOK},
		{name: "no field", cookie: token, field: "", expectedStatus: http.StatusForbidden},
		{name: "different token", cookie: token, field: other, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			m := NewCSRFMiddleware(tokens, zap.NewNop())
			req := postForm(url.Values{"url": {"https://example.com"}, FormTokenField: {tt.field}})
			req.AddCookie(&http.Cookie{Name: FormTokenCookie, Value: tt.cookie})
			rec := httptest.NewRecorder()

			// Act
			m.Protect(expiredHandler(t))(tokenEchoHandler(t)).ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, token, rec.Body.String())
			}
		})
	}
}

// TestCSRF_ProtectRenewsStaleToken проверяет, что после смены секрета (перезапуск
// с секретом по умолчанию), истечения срока или потери куки форма не блокируется:
// выдается новый токен и запрос уходит в expired, а не в next
func TestCSRF_ProtectRenewsStaleToken(t *testing.T) {
	tokens := service.NewFormTokenService("secret")

	rotated, err := service.NewFormTokenService("previous-secret").Issue()
	require.NoError(t, err)

	outdated, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "b9a4c3c4-1f6e-4a57-9a61-3d8f0f2b6c11",
		"iat": time.Now().Add(-2 * service.FormTokenTTL).Unix(),
		"exp": time.Now().Add(-service.FormTokenTTL).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie string
	}{
		{name: "rotated secret", cookie: rotated},
		{name: "expired token", cookie: outdated},
		{name: "no cookie", cookie: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			m := NewCSRFMiddleware(tokens, zap.NewNop())
			req := postForm(url.Values{"url": {"https://example.com"}, FormTokenField: {tt.cookie}})
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: FormTokenCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			// Act
			m.Protect(expiredHandler(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("submission must not reach the form handler")
			})).ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, http.StatusOK, rec.Code)

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, FormTokenCookie, cookies[0].Name)
			assert.NotEqual(t, tt.cookie, cookies[0].Value)
			assert.Equal(t, "expired:"+cookies[0].Value, rec.Body.String())

			_, err := tokens.Verify(cookies[0].Value)
			assert.NoError(t, err)
		})
	}
}
