package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multichain-custody/config"
	"multichain-custody/internal/adapter/chain"
	httpHandler "multichain-custody/internal/adapter/http/handler"
	"multichain-custody/internal/adapter/price"
	pgStorage "multichain-custody/internal/adapter/storage/postgres"
	redisStorage "multichain-custody/internal/adapter/storage/redis"
	"multichain-custody/internal/core/domain"
	"multichain-custody/internal/core/ports"
	"multichain-custody/internal/hdwallet"
	"multichain-custody/internal/service"
	"multichain-custody/pkg/logger"
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
		Msg("Starting Multichain Custody")

	// The mnemonic is converted to the master seed exactly once and the
	// seed lives only in process memory from here on. Neither value is
	// ever logged or written anywhere.
	seed, err := hdwallet.SeedFromMnemonic(cfg.Wallet.Mnemonic)
	if err != nil {
		log.Fatal().Msg("Invalid wallet mnemonic")
	}

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

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	auditRepo := pgStorage.NewExportAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	reconcileLock := redisStorage.NewReconcileLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize chain readers
	httpClient := &http.Client{Timeout: cfg.Chains.Timeout}
	evmReader, err := chain.NewEVMReader(map[domain.Network]string{
		domain.NetworkEthereum: cfg.Chains.EthereumRPC,
		domain.NetworkBSC:      cfg.Chains.BSCRPC,
		domain.NetworkPolygon:  cfg.Chains.PolygonRPC,
		domain.NetworkArbitrum: cfg.Chains.ArbitrumRPC,
		domain.NetworkBase:     cfg.Chains.BaseRPC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize EVM reader")
	}
	btcReader := chain.NewBitcoinReader(cfg.Chains.BitcoinAPI, httpClient)
	solReader := chain.NewSolanaReader(cfg.Chains.SolanaRPC)
	trxReader := chain.NewTronReader(cfg.Chains.TronAPI, "", httpClient)
	balanceReader := chain.NewRegistry(evmReader, btcReader, solReader, trxReader, cfg.Chains.Timeout, log)

	// Initialize price oracle
	oracle := price.NewCoinGecko(cfg.Oracle.BaseURL, cfg.Oracle.APIKey, cfg.Oracle.Timeout, log)

	// Initialize derivation and business services
	deriver := hdwallet.New()
	accountSvc := service.NewAccountService(accountRepo, ledgerRepo, deriver, seed, log)
	reconcileSvc := service.NewReconcileService(
		accountRepo,
		ledgerRepo,
		balanceReader,
		oracle,
		reconcileLock,
		transactor,
		cfg.Reconcile.LockTTL,
		log,
	)

	authorizer := service.NewMultiAuthorizer(
		service.NewStaticCredentialAuthorizer(cfg.Wallet.ExportCredentialHash),
		service.NewExportTokenAuthorizer(cfg.Wallet.ExportTokenSecret, cfg.Wallet.ExportTokenTTL),
	)
	exportSvc := service.NewKeyExportService(accountRepo, auditRepo, authorizer, deriver, seed, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AccountSvc:     accountSvc,
		ReconcileSvc:   reconcileSvc,
		ExportSvc:      exportSvc,
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
