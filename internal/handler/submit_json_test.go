package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shorty-web/internal/mocks"
	"github.com/avc-dev/shorty-web/internal/model"
	"github.com/avc-dev/shorty-web/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestSubmitJSON_Success проверяет успешную отправку через JSON API
func TestSubmitJSON_Success(t *testing.T) {
	// Arrange
	mockUsecase := mocks.NewMockFormUsecase(t)
	expected := model.RenderView{
		URL:             "https://example.com",
		ExpiryCode:      "7d",
		ResponseVisible: true,
		ResultsVisible:  true,
		ShortURLHref:    "https://short.ly/abc",
		ShortURLLabel:   "https://short.ly/abc",
		ExpiryMessage:   "(Expires: 1/1/2024, 12:00:00 AM)",
	}
	mockUsecase.EXPECT().
		Submit(mock.Anything, model.SubmitEvent{URL: "https://example.com", ExpiryCode: "7d", Locale: "en-US"}).
		Return(expected, nil).
		Once()

	h := New(mockUsecase, zap.NewNop(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/submit",
		bytes.NewBufferString(`{"url":"https://example.com","expiryCode":"7d"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en-US")
	w := httptest.NewRecorder()

	// Act
	h.SubmitJSON(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var view model.RenderView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, expected, view)
}

// TestSubmitJSON_InvalidJSON проверяет HTTP обработку невалидного JSON
func TestSubmitJSON_InvalidJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
	}{
		{name: "Malformed JSON", requestBody: `{"url": "https://example.com"`},
		{name: "Empty body", requestBody: ""},
		{name: "Not a JSON", requestBody: "just plain text"},
		{name: "Array instead of object", requestBody: `["https://example.com"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockFormUsecase(t)
			h := New(mockUsecase, zap.NewNop(), nil)

			req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			h.SubmitJSON(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockUsecase.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
		})
	}
}

// TestSubmitJSON_ErrorMapping проверяет маппинг ошибок usecase на HTTP статусы
func TestSubmitJSON_ErrorMapping(t *testing.T) {
	tests := []struct {
		name               string
		usecaseError       error
		expectedHTTPStatus int
	}{
		{
			name:               "ErrValidation maps to 400",
			usecaseError:       fmt.Errorf("%w: url is required", usecase.ErrValidation),
			expectedHTTPStatus: http.StatusBadRequest,
		},
		{
			name:               "ErrBackend maps to 502",
			usecaseError:       usecase.ErrBackend,
			expectedHTTPStatus: http.StatusBadGateway,
		},
		{
			name:               "ErrMalformedResponse maps to 502",
			usecaseError:       usecase.ErrMalformedResponse,
			expectedHTTPStatus: http.StatusBadGateway,
		},
		{
			name:               "Unknown error maps to 500",
			usecaseError:       errors.New("unknown error"),
			expectedHTTPStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUsecase := mocks.NewMockFormUsecase(t)
			mockUsecase.EXPECT().
				Submit(mock.Anything, mock.Anything).
				Return(model.RenderView{ErrorMessage: "failed"}, tt.usecaseError).
				Once()

			h := New(mockUsecase, zap.NewNop(), nil)
			req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"url":"https://example.com"}`))
			w := httptest.NewRecorder()

			// Act
			h.SubmitJSON(w, req)

			// Assert
			assert.Equal(t, tt.expectedHTTPStatus, w.Code)

			var view model.RenderView
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
			assert.Equal(t, "failed", view.ErrorMessage)
		})
	}
}
