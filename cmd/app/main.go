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
	"github.com/happyfaces/facepaint/internal/cache"
	"github.com/happyfaces/facepaint/internal/kafka"
	"github.com/happyfaces/facepaint/internal/logging"
	"github.com/happyfaces/facepaint/internal/service/catalog"
	"github.com/happyfaces/facepaint/internal/service/submission"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(config.ModePersisted); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := logging.New(cfg.Logging, "facepaint-app")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := bootstrap.OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	var catalogCache catalog.Cache
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Redis.CatalogTTL())
		defer redisCache.Close()
		catalogCache = redisCache
	}

	opts := []submission.Option{
		submission.WithLogger(logger),
		submission.WithStoreTimeout(cfg.Database.Timeout()),
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		opts = append(opts, submission.WithEvents(producer, cfg.Kafka.SubmissionsTopic))
	}

	validator := bootstrap.NewValidator(cfg.Validation, config.ModePersisted)
	submissions := submission.NewPersisted(
		validator,
		repos.Contacts,
		repos.Bookings,
		bootstrap.NewNotifier(cfg.Email),
		opts...,
	)
	catalogService := catalog.NewCatalogService(validator, repos, catalogCache, logger, cfg.Database.Timeout())

	rc := api.RouterConfig{
		Submissions: submissions,
		Catalog:     catalogService,
		Logger:      logger,
		Swagger:     cfg.HTTP.SwaggerEnabled,
	}
	if cfg.HTTP.ExposeSubmissions {
		rc.Listings = submissions
	}

	if err := bootstrap.Run(ctx, cfg.HTTP.Address, api.NewRouter(rc), logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
