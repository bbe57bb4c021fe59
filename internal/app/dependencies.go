package app

import (
	"fmt"
	"net/http"

	"github.com/avc-dev/shorty-web/internal/client"
	"github.com/avc-dev/shorty-web/internal/config"
	"github.com/avc-dev/shorty-web/internal/handler"
	"github.com/avc-dev/shorty-web/internal/middleware"
	"github.com/avc-dev/shorty-web/internal/service"
	"github.com/avc-dev/shorty-web/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// initDependencies собирает все зависимости приложения и возвращает роутер
func initDependencies(cfg *config.Config, logger *zap.Logger) (*chi.Mux, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize expiry formatter: %w", err)
	}

	shortyClient := client.New(
		cfg.BackendURL.String(),
		&http.Client{Timeout: cfg.RequestTimeout},
		logger,
	)

	var qrCodes *service.QRCodeGenerator
	if cfg.QRCodeEnabled {
		qrCodes = service.NewQRCodeGenerator(service.DefaultQRCodeSize)
	}

	renderer := service.NewRenderer(service.NewExpiryFormatter(location), qrCodes, logger)
	formUsecase := usecase.NewFormUsecase(shortyClient, service.NewFormValidator(), renderer, logger)
	h := handler.New(formUsecase, logger, shortyClient)

	var csrf *middleware.CSRFMiddleware
	if cfg.CSRFEnabled {
		csrf = middleware.NewCSRFMiddleware(service.NewFormTokenService(cfg.CSRFSecret), logger)
	}

	logger.Info("Using shorty backend",
		zap.String("backend_url", cfg.BackendURL.String()),
		zap.Duration("timeout", cfg.RequestTimeout),
		zap.Bool("qr_codes", cfg.QRCodeEnabled),
		zap.Bool("csrf", cfg.CSRFEnabled),
	)

	return newRouter(h, logger, csrf), nil
}
