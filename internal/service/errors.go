package service

import "errors"

var (
	// ErrURLRequired в форме не указан URL
	ErrURLRequired = errors.New("url is required")
	// ErrInvalidExpiry дату истечения из ответа бэкенда не удалось разобрать
	ErrInvalidExpiry = errors.New("invalid expiry timestamp")
)
