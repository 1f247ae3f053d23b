package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshop/internal/config"
	"bookshop/internal/database"
	"bookshop/internal/httpx"
	"bookshop/internal/logger"
	"bookshop/internal/report"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const maxRequestBytes = 1 << 20

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", database.RedactDSN(cfg.DatabaseDSN)).Msg("open database")
	}
	defer dbPool.Close()

	reportService := report.NewService(report.NewPostgresRepo(dbPool, cfg.QueryTimeout))
	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      newRouter(dbPool, report.NewHTTPHandler(reportService), limiter),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", cfg.ServerAddr).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server error")
		return
	}
	log.Info().Msg("server stopped")
}

func newRouter(dbPool *pgxpool.Pool, reports *report.HTTPHandler, limiter *httpx.RateLimiter) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := database.Ping(r.Context(), dbPool); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	reports.Register(router)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
		limiter.Middleware,
	)
}
