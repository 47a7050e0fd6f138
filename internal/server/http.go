package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/config"
	"github.com/quizdesk/quizdesk/internal/metrics"
	"github.com/quizdesk/quizdesk/internal/sessionstore"
)

// NewHTTPServer wires all routes for the testing API. redisClient may be
// nil when the in-memory store is in use; /healthz then skips the ping.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, store sessionstore.Store, redisClient *redis.Client, m *metrics.Metrics) *http.Server {
	handlers := NewHandlers(store, m, logger, cfg.Upload.MaxBytes)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				logger.Error().Err(err).Msg("redis ping failed")
				http.Error(w, "upstream error", http.StatusBadGateway)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/sets", handlers.UploadSet)
	mux.HandleFunc("GET /v1/sets/{id}", handlers.GetSetSummary)

	mux.HandleFunc("POST /v1/sessions", handlers.CreateSession)
	mux.HandleFunc("GET /v1/sessions/{id}/question", handlers.GetCurrentQuestion)
	mux.HandleFunc("POST /v1/sessions/{id}/answers", handlers.SubmitAnswer)
	mux.HandleFunc("POST /v1/sessions/{id}/finish", handlers.FinishSession)
	mux.HandleFunc("GET /v1/sessions/{id}/results", handlers.GetResults)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}
