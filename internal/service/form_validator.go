package service

import (
	"errors"
	"fmt"

	"github.com/avc-dev/shorty-web/internal/model"
	"github.com/go-playground/validator/v10"
)

// FormValidator проверяет поля формы перед отправкой на бэкенд.
// Единственное правило: url обязателен. expiryCode не проверяется.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator создает новый экземпляр FormValidator
func NewFormValidator() *FormValidator {
	return &FormValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate возвращает ErrURLRequired, если url пустой
func (v *FormValidator) Validate(req model.ShortenRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.StructField() == "URL" {
				return ErrURLRequired
			}
		}
	}

	return fmt.Errorf("failed to validate shorten request: %w", err)
}
