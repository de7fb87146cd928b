// Command edge serves the submission endpoints without a database: every
// valid submission is emailed straight to the owner.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/happyfaces/facepaint/api"
	"github.com/happyfaces/facepaint/config"
	"github.com/happyfaces/facepaint/internal/bootstrap"
	"github.com/happyfaces/facepaint/internal/kafka"
	"github.com/happyfaces/facepaint/internal/logging"
	"github.com/happyfaces/facepaint/internal/service/submission"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(config.ModeEdge); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := logging.New(cfg.Logging, "facepaint-edge")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []submission.Option{submission.WithLogger(logger)}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, submission.WithEvents(producer, cfg.Kafka.SubmissionsTopic))
	}

	handler := submission.NewDirect(
		bootstrap.NewValidator(cfg.Validation, config.ModeEdge),
		bootstrap.NewNotifier(cfg.Email),
		opts...,
	)

	router := api.NewRouter(api.RouterConfig{Submissions: handler, Logger: logger})
	if err := bootstrap.Run(ctx, cfg.HTTP.Address, router, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
