package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lnpos-gateway/config"
	httpHandler "lnpos-gateway/internal/adapter/http/handler"
	"lnpos-gateway/internal/adapter/http/middleware"
	"lnpos-gateway/internal/adapter/lightning"
	"lnpos-gateway/internal/adapter/rates"
	pgStorage "lnpos-gateway/internal/adapter/storage/postgres"
	redisStorage "lnpos-gateway/internal/adapter/storage/redis"
	"lnpos-gateway/internal/core/ports"
	"lnpos-gateway/internal/obs"
	"lnpos-gateway/internal/service"
	"lnpos-gateway/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("LNPOS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting LNPoS gateway")

	ctx := context.Background()

	// Tracing (optional)
	var tracerProvider trace.TracerProvider
	if cfg.Tracing.Enabled {
		shutdown, err := obs.InitTracer(ctx, obs.TracingConfig{
			ServiceName:   "lnpos-gateway",
			Endpoint:      cfg.Tracing.Endpoint,
			SamplingRatio: cfg.Tracing.SamplingRatio,
			Environment:   cfg.Tracing.Environment,
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialise tracing, continuing without")
		} else {
			tracerProvider = otel.GetTracerProvider()
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("Tracer shutdown failed")
				}
			}()
		}
	}

	// Schema first, then the pool
	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(cfg.Database.MigrateURL(), log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

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
	if tracerProvider != nil {
		if err := redisotel.InstrumentTracing(rdb); err != nil {
			log.Error().Err(err).Msg("Failed to instrument Redis tracing")
		}
	}

	// Initialize repositories
	terminalRepo := pgStorage.NewTerminalRepo(pool)
	paymentRepo := pgStorage.NewPaymentRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateCache := redisStorage.NewRateCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Key vault for terminal secrets
	var vault *service.AESEncryptionService
	if cfg.Vault.Key != "" {
		vault, err = service.NewAESEncryptionService(cfg.Vault.Key)
	} else {
		vault, err = service.NewPassphraseEncryptionService(cfg.Vault.Passphrase, cfg.Vault.Salt)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key vault")
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Upstream clients
	rateOracle := rates.NewClient(cfg.Rates.URL, obs.NewHTTPClient(cfg.Rates.Timeout), rateCache, cfg.Rates.CacheTTL, log)
	issuer := lightning.NewClient(cfg.Lightning.URL, cfg.Lightning.APIKey, obs.NewHTTPClient(cfg.Lightning.Timeout))
	var swap ports.SwapProvider
	if cfg.Swap.URL != "" {
		swap = lightning.NewSwapClient(cfg.Swap.URL, cfg.Swap.APIKey, obs.NewHTTPClient(cfg.Swap.Timeout))
	} else {
		log.Info().Msg("swap.url not set, on-chain withdrawals disabled")
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := obs.NewHTTPMetrics(cfg.Metrics.Namespace, reg)
	lnurlMetrics := obs.NewLnurlMetrics(cfg.Metrics.Namespace, reg)

	// Initialize business services
	auditSvc := service.NewAuditService(auditRepo, log)
	pricingSvc := service.NewPricingService(rateOracle, cfg.Rates.Timeout, log)
	lnurlSvc := service.NewLnurlService(
		terminalRepo,
		paymentRepo,
		pricingSvc,
		issuer,
		swap,
		nonceStore,
		vault,
		auditSvc,
		lnurlMetrics,
		service.LnurlConfig{NonceTTL: cfg.Quote.NonceTTL, UpstreamTimeout: cfg.Lightning.Timeout},
		log,
	)
	pinSvc := service.NewPinService(terminalRepo, paymentRepo, issuer, cfg.Lightning.Timeout, log)
	terminalSvc := service.NewTerminalService(terminalRepo, vault, log)
	reportingSvc := service.NewReportingService(terminalRepo, paymentRepo)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool, cfg.Server.HealthTimeout)
	redisHealth := redisStorage.NewHealthCheck(rdb, cfg.Server.HealthTimeout)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LnurlSvc:       lnurlSvc,
		PinSvc:         pinSvc,
		TerminalSvc:    terminalSvc,
		ReportingSvc:   reportingSvc,
		TokenSvc:       tokenSvc,
		AuditSvc:       auditSvc,
		RateLimitStore: rateLimitStore,
		RateLimitRules: middleware.DefaultRateLimitRules(cfg.RateLimit.Limit, cfg.RateLimit.Window),
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		HTTPMetrics:    httpMetrics,
		Gatherer:       reg,
		TracerProvider: tracerProvider,
		PublicURL:      cfg.Server.PublicURL,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
