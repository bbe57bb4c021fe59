// shortyctl отправляет URL на бэкенд shorty так же, как веб-форма,
// и печатает короткую ссылку и дату истечения.
//
//	shortyctl -s http://localhost:8080 -e 1 https://example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/avc-dev/shorty-web/internal/client"
	"github.com/avc-dev/shorty-web/internal/config"
	"github.com/avc-dev/shorty-web/internal/model"
	"github.com/avc-dev/shorty-web/internal/service"
	"github.com/avc-dev/shorty-web/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	backend := config.URLPrefix("http://localhost:8080")

	flags := flag.NewFlagSet("shortyctl", flag.ContinueOnError)
	flags.Var(&backend, "s", "base URL of the shorty backend")
	expiryCode := flags.String("e", "", "expiry code passed to the backend")
	timeout := flags.Duration("t", config.DefaultRequestTimeout, "request timeout")
	timezone := flags.String("z", "Local", "time zone for the expiry date")
	qr := flags.String("qr", "", "write a PNG QR code of the short URL to this file")
	verbose := flags.Bool("v", false, "verbose logging")
	if err := flags.Parse(args); err != nil {
		return err
	}
	// flag останавливается на первом позиционном аргументе, флаги после URL потерялись бы
	if flags.NArg() > 1 {
		return fmt.Errorf("unexpected arguments after URL: %s (flags must come before the URL)",
			strings.Join(flags.Args()[1:], " "))
	}

	location, err := time.LoadLocation(*timezone)
	if err != nil {
		return fmt.Errorf("unknown time zone %q: %w", *timezone, err)
	}

	logger := zap.NewNop()
	if *verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer logger.Sync()

	shortyClient := client.New(backend.String(), &http.Client{Timeout: *timeout}, logger)
	renderer := service.NewRenderer(service.NewExpiryFormatter(location), nil, logger)
	formUsecase := usecase.NewFormUsecase(shortyClient, service.NewFormValidator(), renderer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view, err := formUsecase.Submit(ctx, model.SubmitEvent{
		URL:        flags.Arg(0),
		ExpiryCode: *expiryCode,
		Locale:     localeFromEnv(os.Getenv("LC_ALL"), os.Getenv("LANG")),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			return errors.New(view.ValidationMessage)
		case view.ErrorMessage != "":
			return fmt.Errorf("%s: %w", view.ErrorMessage, err)
		default:
			return err
		}
	}

	fmt.Fprintf(out, "%s %s\n", view.ShortURLLabel, view.ExpiryMessage)

	if *qr != "" {
		png, qrErr := service.NewQRCodeGenerator(service.DefaultQRCodeSize).PNG(view.ShortURLHref)
		if qrErr != nil {
			return qrErr
		}
		if err = os.WriteFile(*qr, png, 0o644); err != nil {
			return fmt.Errorf("failed to write QR code: %w", err)
		}
	}

	return nil
}

// localeFromEnv переводит POSIX локаль (de_DE.UTF-8) в тег BCP 47 (de-DE)
func localeFromEnv(values ...string) string {
	for _, v := range values {
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		v, _, _ = strings.Cut(v, ".")
		v, _, _ = strings.Cut(v, "@")
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
