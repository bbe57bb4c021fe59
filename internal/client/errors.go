package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport запрос до бэкенда не дошёл или ответ не был получен
	ErrTransport = errors.New("shorty backend request failed")
	// ErrMalformedResponse тело ответа не JSON или в нём нет обязательных полей
	ErrMalformedResponse = errors.New("malformed shorty backend response")
)

// StatusError бэкенд ответил статусом вне диапазона 2xx
type StatusError struct {
	StatusCode int
	// Message поле message из тела ошибки, если бэкенд его прислал
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("shorty backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("shorty backend responded with status %d: %s", e.StatusCode, e.Message)
}
