package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "atlas/internal/auth/handler"
	authservice "atlas/internal/auth/service"
	userstore "atlas/internal/auth/store/user"
	countrycache "atlas/internal/country/cache"
	"atlas/internal/country/client"
	countryhandler "atlas/internal/country/handler"
	countrymetrics "atlas/internal/country/metrics"
	countryservice "atlas/internal/country/service"
	countrystore "atlas/internal/country/store"
	"atlas/internal/country/tracer"
	"atlas/internal/jwttoken"
	"atlas/internal/platform/config"
	"atlas/internal/platform/database"
	"atlas/internal/platform/health"
	"atlas/internal/platform/logger"
	platformmetrics "atlas/internal/platform/metrics"
	"atlas/internal/platform/middleware"
	"atlas/internal/platform/redis"
)

// main wires dependencies and owns the server lifecycle. Business logic lives
// in the internal service packages. When DATABASE_URL or REDIS_URL is unset
// the corresponding in-memory implementation is used, so the service runs
// standalone in development.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing atlas",
		"addr", cfg.App.Addr,
		"environment", cfg.App.Environment,
	)

	pool, err := database.New(cfg.Database)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}

	metrics := countrymetrics.New()
	httpMetrics := platformmetrics.New()

	var store countryservice.Store
	var users authservice.UserStore
	if pool != nil {
		store = countrystore.NewPostgres(pool.DB())
		users = userstore.NewPostgres(pool.DB())
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		store = countrystore.NewMemory()
		users = userstore.NewMemory()
	}

	var cache countryservice.Cache
	if redisClient != nil {
		cache = countrycache.NewRedis(redisClient.Client, cfg.Cache.TTL, metrics)
	} else {
		log.Warn("REDIS_URL not set, using in-memory cache")
		cache = countrycache.NewMemory(cfg.Cache.TTL)
	}

	provider := client.New(cfg.Upstream, log, client.WithRetries(2))
	countrySvc := countryservice.New(store, cache, provider, countrycache.RegionsKey,
		countryservice.WithLogger(log),
		countryservice.WithMetrics(metrics),
		countryservice.WithTracer(tracer.NewOTel()),
	)

	jwtSvc := jwttoken.New(cfg.JWT)
	authSvc := authservice.New(users, jwtSvc, authservice.WithLogger(log))

	countryH := countryhandler.New(countrySvc, log)
	authH := authhandler.New(authSvc, log)

	healthH := health.New(cfg.App.Environment)
	if pool != nil {
		healthH.RegisterCheck("database", pool.HealthCheck)
	}
	if redisClient != nil {
		healthH.RegisterCheck("redis", redisClient.HealthCheck)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Latency(httpMetrics))
	r.Use(middleware.Timeout(cfg.App.RequestTimeout))
	r.Use(middleware.ContentTypeJSON)

	healthH.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	authH.Register(r)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSvc, log))
		countryH.Register(r)
		countryH.RegisterAdmin(r)
		authH.RegisterProtected(r)
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.App.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if pool != nil {
		_ = pool.Close()
	}

	log.Info("server stopped")
}
