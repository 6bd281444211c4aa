package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/backend-till/internal/billing"
	"github.com/noah-isme/backend-till/internal/catalog"
	"github.com/noah-isme/backend-till/internal/config"
	"github.com/noah-isme/backend-till/internal/discount"
	"github.com/noah-isme/backend-till/internal/health"
	"github.com/noah-isme/backend-till/internal/obs"
	"github.com/noah-isme/backend-till/internal/security"
)

func main() {
	cfg := config.MustLoad()

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	if cfg.MetricsEnabled {
		obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)
	}

	items, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("load catalog")
	}

	var discounts *discount.Registry
	if cfg.DiscountsPath != "" {
		discounts, err = discount.Load(cfg.DiscountsPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.DiscountsPath).Msg("load discounts")
		}
	} else {
		discounts, _ = discount.NewRegistry(nil)
	}
	logger.Info().Int("items", items.Len()).Int("discounts", discounts.Len()).Msg("registries loaded")

	billingSvc := &billing.Service{Items: items, Discounts: discounts}
	billingHandler := &billing.Handler{Svc: billingSvc, Log: logger}

	var httpMetrics *obs.HTTPMetrics
	if cfg.MetricsEnabled {
		buckets := obs.ParseBucketsCSV(envOrDefault("OBS_METRICS_BUCKETS_MS", ""))
		httpMetrics = obs.NewHTTPMetrics(cfg.MetricsNamespace, buckets, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if cfg.MetricsEnabled && httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(security.Headers{Enable: cfg.SecurityHeaders}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	healthHandler := health.Handler{Checker: readinessChecker{items: items, discounts: discounts}}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Get("/items", billingHandler.Items)
		v.Get("/discounts", billingHandler.Discounts)
		v.With(security.BodyLimit{Max: cfg.MaxBodyBytes}.Middleware).Post("/bills", billingHandler.Compute)
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}

type readinessChecker struct {
	items     *catalog.Registry
	discounts *discount.Registry
}

func (c readinessChecker) CheckRegistries(_ context.Context) error {
	if c.items == nil {
		return errors.New("catalog not loaded")
	}
	if c.discounts == nil {
		return errors.New("discounts not loaded")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}
