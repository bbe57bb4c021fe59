package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shorty-web/internal/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет веб-интерфейс shorty
type App struct {
	config *config.Config
	logger *zap.Logger
	router *chi.Mux
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	router, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		router: router,
	}, nil
}

// Run запускает приложение и ждет SIGINT или SIGTERM
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.start(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = lvl

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
