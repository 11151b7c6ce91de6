// Package main is the entry point for Ascii Hero.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciihero/internal/game"
	"github.com/samdwyer/asciihero/internal/logging"
	"github.com/samdwyer/asciihero/internal/telemetry"
	"github.com/samdwyer/asciihero/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// Local development keeps the Honeycomb key and overrides in .env
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal belongs to tcell, so logs go to a file.
	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logFile})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		for k, v := range telemetry.HoneycombEnv(os.Getenv) {
			os.Setenv(k, v)
		}
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Attributes: []attribute.KeyValue{
				attribute.String("game.visibility_policy", cfg.VisibilityPolicy),
				attribute.Int("game.width", cfg.Width),
				attribute.Int("game.height", cfg.Height),
			},
		})
		if err != nil {
			logger.WithError(err).Warn("telemetry setup failed, running without traces")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.WithError(err).Error("telemetry shutdown")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Error("game exited with error")
		fmt.Fprintf(os.Stderr, "asciihero: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg game.Config, logger *logrus.Logger) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Close()

	g, err := game.New(cfg, logger, ui.NewRenderer(screen))
	if err != nil {
		return err
	}
	return g.Run(ctx, screen)
}
