package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/shorty-web/internal/client"
)

var (
	// ErrValidation отправка отклонена проверкой формы, запрос на бэкенд не отправлялся
	ErrValidation = errors.New("form validation failed")
	// ErrBackend бэкенд недоступен или ответил ошибкой
	ErrBackend = errors.New("shorty backend failed")
	// ErrMalformedResponse бэкенд ответил, но ответ не удалось разобрать
	ErrMalformedResponse = errors.New("malformed shorty backend response")
)

const (
	MessageURLRequired       = "Must specify a URL"
	MessageInvalidForm       = "Please check the form and try again."
	MessageBackendFailed     = "Could not shorten the URL, please try again."
	MessageMalformedResponse = "Unexpected response from the shortening service."
)

// backendErrorMessage возвращает сообщение для пользователя по ошибке клиента.
// Для 4xx к сообщению добавляется текст ошибки от бэкенда.
func backendErrorMessage(err error) string {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode < 500 && statusErr.Message != "" {
		return fmt.Sprintf("%s %s", MessageBackendFailed, statusErr.Message)
	}
	return MessageBackendFailed
}
