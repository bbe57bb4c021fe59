package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/avc-dev/shorty-web/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ShortenPath путь ресурса url на бэкенде shorty
	ShortenPath = "/shorty/v1/url"

	ContentTypeJSON = "application/json; charset=UTF-8"
	RequestIDHeader = "X-Request-ID"

	maxResponseSize = 1 << 20
)

type requestIDKey struct{}

// WithRequestID кладёт идентификатор запроса в контекст, клиент передаст его в X-Request-ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext возвращает идентификатор запроса из контекста
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// ShortyClient HTTP клиент бэкенда shorty
type ShortyClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New создает клиент для бэкенда с базовым адресом baseURL.
// Если httpClient равен nil, используется http.DefaultClient.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *ShortyClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ShortyClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// EncodeRequest сериализует запрос ровно в {"url":"...","expiryCode":"..."}
func EncodeRequest(req model.ShortenRequest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req); err != nil {
		return nil, fmt.Errorf("failed to encode shorten request: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Shorten отправляет один POST запрос на создание короткого URL.
// Возвращает либо ответ бэкенда, либо ошибку: ErrTransport, *StatusError
// или ErrMalformedResponse. Повторов нет.
func (c *ShortyClient) Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error) {
	endpoint, err := url.JoinPath(c.baseURL, ShortenPath)
	if err != nil {
		return model.ShortenResponse{}, fmt.Errorf("failed to build shorten endpoint: %w", err)
	}

	body, err := EncodeRequest(req)
	if err != nil {
		return model.ShortenResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return model.ShortenResponse{}, fmt.Errorf("failed to create shorten request: %w", err)
	}

	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("Content-Type", ContentTypeJSON)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return model.ShortenResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return model.ShortenResponse{}, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp model.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil {
			statusErr.Message = errResp.Message
		}
		c.logger.Debug("shorty backend returned error status",
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("message", statusErr.Message),
		)
		return model.ShortenResponse{}, statusErr
	}

	return decodeResponse(respBody)
}

func decodeResponse(body []byte) (model.ShortenResponse, error) {
	var result model.ShortenResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return model.ShortenResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if result.ShortURL == "" {
		return model.ShortenResponse{}, fmt.Errorf("%w: shortUrl is missing", ErrMalformedResponse)
	}
	if result.Expiry == "" {
		return model.ShortenResponse{}, fmt.Errorf("%w: expiry is missing", ErrMalformedResponse)
	}
	return result, nil
}

// Ping проверяет, что бэкенд отвечает по базовому адресу
func (c *ShortyClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create ping request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
