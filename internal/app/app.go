package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/config"
	"github.com/quizdesk/quizdesk/internal/logging"
	"github.com/quizdesk/quizdesk/internal/metrics"
	"github.com/quizdesk/quizdesk/internal/server"
	"github.com/quizdesk/quizdesk/internal/sessionstore"
)

// Application aggregates shared infrastructure for the HTTP front-end.
type Application struct {
	cfg    *config.App
	logger zerolog.Logger
	redis  *redis.Client
	http   *http.Server
}

// New bootstraps config, logger, the session store and the HTTP server.
// Without REDIS_ADDR the server runs on the in-memory store, suitable for
// a single process.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	var redisClient *redis.Client
	var store sessionstore.Store
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		store = sessionstore.NewRedisStore(redisClient, cfg.Redis.StateTTL)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("redis session store ready")
	} else {
		store = sessionstore.NewMemoryStore()
		logger.Warn().Msg("REDIS_ADDR not set; using in-memory session store")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	apiServer := server.NewHTTPServer(cfg, logger, store, redisClient, m)

	return &Application{
		cfg:    cfg,
		logger: logger,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
