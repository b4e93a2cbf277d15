package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-rails/config"
	"payment-rails/internal/adapter/gateway"
	httpHandler "payment-rails/internal/adapter/http/handler"
	pgStorage "payment-rails/internal/adapter/storage/postgres"
	redisStorage "payment-rails/internal/adapter/storage/redis"
	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
	"payment-rails/internal/service"
	"payment-rails/pkg/logger"

	"github.com/rs/zerolog"
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
		Msg("Starting Payment Rails")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	payerRepo := pgStorage.NewPayerRepo(pool)
	paramsRepo := pgStorage.NewParamsRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	quotaStore := redisStorage.NewQuotaStore(rdb)

	// Seed ledger parameters from config on first boot
	if err := seedParams(ctx, paramsRepo, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed ledger parameters")
	}

	// Initialize core services
	signer := service.NewHMACSigner()
	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.JWTIssuer)
	authorizer := service.NewCapabilityAuthorizer(cfg.Auth.Admins, cfg.Auth.Registrars, cfg.Auth.Verifiers, cfg.Auth.Relayers)
	verifier := service.NewIntentVerifier(domain.SigningDomain{
		Name:      cfg.Signing.DomainName,
		Version:   cfg.Signing.DomainVersion,
		NetworkID: cfg.Signing.NetworkID,
		LedgerID:  cfg.Signing.LedgerID,
	})
	transferGateway := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Secret, cfg.Gateway.Timeout, signer, log)
	notifier := service.NewEventNotifier(cfg.Notifier.Endpoints, cfg.Notifier.Secret, signer,
		&http.Client{Timeout: 10 * time.Second}, log)

	// Initialize business services
	directorySvc := service.NewDirectoryService(merchantRepo, paramsRepo, transactor, authorizer, notifier, log)
	ledgerSvc := service.NewLedgerService(
		paymentRepo,
		merchantRepo,
		payerRepo,
		paramsRepo,
		transactor,
		transferGateway,
		verifier,
		quotaStore,
		authorizer,
		notifier,
		cfg.Ledger.FeeCollector,
		log,
	)
	paramsSvc := service.NewParamsService(paramsRepo, authorizer, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DirectorySvc:   directorySvc,
		LedgerSvc:      ledgerSvc,
		ParamsSvc:      paramsSvc,
		TokenSvc:       tokenSvc,
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

// seedParams writes the configured parameter defaults if no row exists yet.
// Persisted values always win over config on later boots.
func seedParams(ctx context.Context, repo ports.ParamsRepository, cfg *config.Config, log zerolog.Logger) error {
	existing, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	params := &domain.LedgerParams{
		MaxFeeBps:         cfg.Ledger.MaxFeeBps,
		DefaultFeeBps:     cfg.Ledger.DefaultFeeBps,
		MinPaymentAmount:  cfg.Ledger.MinPaymentAmount,
		DailyGaslessQuota: cfg.Ledger.DailyGaslessQuota,
		UpdatedAt:         time.Now().UTC(),
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("configured ledger params invalid: %w", err)
	}
	if err := repo.Update(ctx, params); err != nil {
		return err
	}

	log.Info().
		Int64("max_fee_bps", params.MaxFeeBps).
		Int64("default_fee_bps", params.DefaultFeeBps).
		Int64("daily_gasless_quota", params.DailyGaslessQuota).
		Msg("Seeded ledger parameters from config")
	return nil
}
