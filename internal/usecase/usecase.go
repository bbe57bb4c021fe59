package usecase

import (
	"context"

	"github.com/avc-dev/shorty-web/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name ShortyClient --output ../mocks --outpkg mocks --filename mock_ShortyClient.go --with-expecter

// ShortyClient определяет интерфейс клиента бэкенда shorty
type ShortyClient interface {
	Shorten(ctx context.Context, req model.ShortenRequest) (model.ShortenResponse, error)
}

//go:generate mockery --name FormValidator --output ../mocks --outpkg mocks --filename mock_FormValidator.go --with-expecter

// FormValidator определяет интерфейс проверки полей формы
type FormValidator interface {
	Validate(req model.ShortenRequest) error
}

// ResponseRenderer определяет интерфейс отрисовки ответа бэкенда
type ResponseRenderer interface {
	Render(resp model.ShortenResponse, locale string) (model.RenderView, error)
}

// FormUsecase содержит логику обработки отправки формы сокращения URL
type FormUsecase struct {
	client    ShortyClient
	validator FormValidator
	renderer  ResponseRenderer
	logger    *zap.Logger
}

// NewFormUsecase создает новый экземпляр FormUsecase
func NewFormUsecase(client ShortyClient, validator FormValidator, renderer ResponseRenderer, logger *zap.Logger) *FormUsecase {
	return &FormUsecase{
		client:    client,
		validator: validator,
		renderer:  renderer,
		logger:    logger,
	}
}
