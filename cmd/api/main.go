package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wellness-hospital/laboratory/backend/internal/adapters/cache"
	"github.com/wellness-hospital/laboratory/backend/internal/adapters/database"
	"github.com/wellness-hospital/laboratory/backend/internal/api/handlers"
	"github.com/wellness-hospital/laboratory/backend/internal/api/middleware"
	"github.com/wellness-hospital/laboratory/backend/internal/api/routes"
	"github.com/wellness-hospital/laboratory/backend/internal/application/services"
	"github.com/wellness-hospital/laboratory/backend/internal/catalog"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/providers"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/clients/postgres"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/clients/redis"
	"github.com/wellness-hospital/laboratory/backend/internal/infrastructure/observability"
	"github.com/wellness-hospital/laboratory/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Str("host", cfg.Database.Host).Msg("PostgreSQL client initialized")

	// Continue without Redis; catalog reads are in-memory anyway
	var cacheProvider providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Redis client, response cache disabled")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient, "laboratory")
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
		}
	}

	labCatalog := catalog.Default()
	log.Info().
		Int("profiles", len(labCatalog.Profiles())).
		Int("parameters", len(labCatalog.Parameters())).
		Msg("lab catalog loaded")

	labOrderRepo := database.NewLabOrderAdapter(pgClient)
	if cacheProvider != nil {
		labOrderRepo = database.NewCachedLabOrderAdapter(labOrderRepo, cacheProvider)
	}
	analyticsRepo := database.NewSearchAnalyticsAdapter(pgClient)

	analyticsService := services.NewSearchAnalyticsService(analyticsRepo)

	var tracker services.SearchTracker
	var analyticsHandler *handlers.AnalyticsHandler
	if cfg.Search.AnalyticsEnabled {
		tracker = analyticsService
		analyticsHandler = handlers.NewAnalyticsHandler(analyticsService)
	}

	catalogService := services.NewCatalogService(labCatalog, tracker, metrics)
	labOrderService := services.NewLabOrderService(labOrderRepo)
	resultEntryService := services.NewResultEntryService(labOrderRepo, labCatalog)

	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.Search.DefaultLimit)
	labOrderHandler := handlers.NewLabOrderHandler(labOrderService, resultEntryService)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, cfg.Search.CacheTTLSeconds, metrics)
	}

	router := routes.NewRouter(catalogHandler, labOrderHandler, analyticsHandler, routes.Options{
		CacheMiddleware: cacheMiddleware,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		BrowserMaxAge:   cfg.Search.CacheTTLSeconds,
		Metrics:         metrics,
	})

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
