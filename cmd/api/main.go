package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solwallet-api/config"
	httpHandler "solwallet-api/internal/adapter/http/handler"
	"solwallet-api/internal/adapter/storage/memory"
	redisStorage "solwallet-api/internal/adapter/storage/redis"
	"solwallet-api/internal/core/ports"
	"solwallet-api/internal/service"
	"solwallet-api/pkg/logger"
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
		Msg("Starting SolWallet API")

	ctx := context.Background()

	// In-memory store, seeded with the demo wallet
	store := memory.NewStore()
	walletRepo := memory.NewWalletRepo(store)
	txRepo := memory.NewTransactionRepo(store)
	convRepo := memory.NewConversationRepo(store)
	log.Info().Msg("In-memory store initialized with demo data")

	// Optional Redis-backed rate limiting
	var rateLimitStore *redisStorage.RateLimitStore
	var healthCheckers []ports.HealthChecker
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Info().Msg("Redis disabled, running without rate limiting")
	}

	// Initialize services
	keypairSvc := service.NewKeypairService()
	walletSvc := service.NewWalletService(walletRepo, txRepo, keypairSvc, log)
	txSvc := service.NewTransactionService(txRepo, walletRepo, log)
	assistantSvc := service.NewAssistantService(
		convRepo,
		&http.Client{Timeout: cfg.OpenAI.Timeout},
		cfg.OpenAI,
		log,
	)

	if cfg.OpenAI.APIKey == "" {
		log.Warn().Msg("OpenAI API key not set, assistant will serve fallback responses only")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		TxSvc:          txSvc,
		AssistantSvc:   assistantSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Mode:           cfg.Server.Mode,
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
