package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultRequestTimeout  = 10 * time.Second
	DefaultDisplayTimezone = "UTC"
	DefaultLogLevel        = "info"
)

// Config настройки веб-интерфейса shorty
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BackendURL      URLPrefix      `env:"SHORTY_BACKEND_URL"`
	RequestTimeout  time.Duration  `env:"REQUEST_TIMEOUT"`
	DisplayTimezone string         `env:"DISPLAY_TIMEZONE"`
	QRCodeEnabled   bool           `env:"QR_CODE_ENABLED"`
	CSRFEnabled     bool           `env:"CSRF_ENABLED"`
	CSRFSecret      string         `env:"CSRF_SECRET"`
	LogLevel        string         `env:"LOG_LEVEL"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8000},
		BackendURL:      URLPrefix("http://localhost:8080"),
		RequestTimeout:  DefaultRequestTimeout,
		DisplayTimezone: DefaultDisplayTimezone,
		QRCodeEnabled:   false,
		CSRFEnabled:     true,
		LogLevel:        DefaultLogLevel,
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем .env и переменные
// окружения, затем флаги командной строки
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return LoadFromArgs(os.Args[0], os.Args[1:])
}

// LoadFromArgs то же, что Load, но без чтения .env и с явными аргументами
func LoadFromArgs(name string, args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flags.Var(&cfg.BackendURL, "b", "base URL of the shorty backend")
	flags.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "timeout for backend requests")
	flags.StringVar(&cfg.DisplayTimezone, "z", cfg.DisplayTimezone, "time zone for displaying expiry dates")
	flags.BoolVar(&cfg.QRCodeEnabled, "q", cfg.QRCodeEnabled, "render QR code for short URLs")
	flags.BoolVar(&cfg.CSRFEnabled, "c", cfg.CSRFEnabled, "protect the form with a CSRF token")
	flags.StringVar(&cfg.CSRFSecret, "k", cfg.CSRFSecret, "secret for signing CSRF tokens")
	flags.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.CSRFEnabled && cfg.CSRFSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.CSRFSecret = secret
	}

	return cfg, nil
}

// Location возвращает часовой пояс для отображения дат
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("unknown display timezone %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}

func (c *Config) validate() error {
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative: %s", c.RequestTimeout)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate CSRF secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
