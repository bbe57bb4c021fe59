package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shorty-web/internal/client"
	"github.com/avc-dev/shorty-web/internal/model"
	"github.com/avc-dev/shorty-web/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit обрабатывает одну отправку формы: проверяет url, отправляет запрос
// на бэкенд и возвращает инструкции для отрисовки страницы.
// View возвращается всегда, ошибка нужна только для выбора HTTP статуса.
func (u *FormUsecase) Submit(ctx context.Context, event model.SubmitEvent) (model.RenderView, error) {
	req := model.ShortenRequest{
		URL:        event.URL,
		ExpiryCode: event.ExpiryCode,
	}
	view := model.RenderView{
		URL:        event.URL,
		ExpiryCode: event.ExpiryCode,
	}

	if err := u.validator.Validate(req); err != nil {
		u.logger.Debug("shorten form rejected", zap.Error(err))
		view.ValidationMessage = MessageURLRequired
		if !errors.Is(err, service.ErrURLRequired) {
			// текст внутренней ошибки пользователю не показываем
			view.ValidationMessage = MessageInvalidForm
		}
		return view, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	requestID := uuid.NewString()
	ctx = client.WithRequestID(ctx, requestID)

	resp, err := u.client.Shorten(ctx, req)
	if err != nil {
		view.ResponseVisible = true
		if errors.Is(err, client.ErrMalformedResponse) {
			u.logger.Error("malformed response from shorty backend",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			view.ErrorMessage = MessageMalformedResponse
			return view, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}

		u.logger.Warn("failed to shorten URL",
			zap.String("request_id", requestID),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		view.ErrorMessage = backendErrorMessage(err)
		return view, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	rendered, err := u.renderer.Render(resp, event.Locale)
	if err != nil {
		u.logger.Error("failed to render shorty backend response",
			zap.String("request_id", requestID),
			zap.String("expiry", resp.Expiry),
			zap.Error(err),
		)
		view.ResponseVisible = true
		view.ErrorMessage = MessageMalformedResponse
		return view, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	rendered.URL = view.URL
	rendered.ExpiryCode = view.ExpiryCode

	u.logger.Debug("short URL created",
		zap.String("request_id", requestID),
		zap.String("short_url", resp.ShortURL),
	)

	return rendered, nil
}
