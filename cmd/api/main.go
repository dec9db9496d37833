package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kyc-webhook-simulator/config"
	httpHandler "kyc-webhook-simulator/internal/adapter/http/handler"
	pgStorage "kyc-webhook-simulator/internal/adapter/storage/postgres"
	redisStorage "kyc-webhook-simulator/internal/adapter/storage/redis"
	"kyc-webhook-simulator/internal/core/ports"
	"kyc-webhook-simulator/internal/metrics"
	"kyc-webhook-simulator/internal/service"
	"kyc-webhook-simulator/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting KYC Webhook Simulator")

	metrics.Register()

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories and Redis stores
	checkRepo := pgStorage.NewCheckRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	idemStore := redisStorage.NewIdempotencyStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	payloadGen := service.NewTemplatePayloadGenerator(0)
	tracker := service.NewMemoryDeliveryTracker()
	auditSvc := service.NewAuditService(log)

	dispatcher := service.NewHTTPDispatcher(
		service.DispatcherConfig{
			MaxRetries:       cfg.Dispatcher.MaxRetries,
			RetryDelay:       cfg.Dispatcher.RetryDelay,
			SimulateFailures: cfg.Dispatcher.SimulateFailures,
			FailureRate:      cfg.Dispatcher.FailureRate,
			Secret:           cfg.Webhook.Secret,
		},
		&http.Client{Timeout: cfg.Dispatcher.RequestTimeout},
		payloadGen,
		sigSvc,
		tracker,
		nil, // default exponential backoff
		log,
	)

	scheduler := service.NewTimerScheduler(
		service.SchedulerConfig{
			BaseWebhookURL:  cfg.Webhook.BaseURL,
			DefaultDelayMin: cfg.Scheduler.DefaultDelayMin,
			DefaultDelayMax: cfg.Scheduler.DefaultDelayMax,
			QueueSize:       cfg.Scheduler.QueueSize,
			Workers:         cfg.Scheduler.Workers,
			Retention:       cfg.Scheduler.Retention,
		},
		dispatcher,
		log,
	)
	defer scheduler.Close()

	processor := service.NewInboundProcessor(
		service.ProcessorConfig{
			Secret:         cfg.Webhook.Secret,
			IdempotencyTTL: cfg.Processor.IdempotencyTTL,
		},
		checkRepo,
		eventRepo,
		idemStore,
		sigSvc,
		auditSvc,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Processor:      processor,
		Scheduler:      scheduler,
		Tracker:        tracker,
		SigSvc:         sigSvc,
		EventRepo:      eventRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
