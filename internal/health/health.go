// Package health exposes a liveness endpoint for container orchestration.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"tldw/internal/cache"
)

// Server answers GET /healthz with process status.
type Server struct {
	started  time.Time
	store    cache.Store
	provider string
	logger   zerolog.Logger
}

func New(store cache.Store, provider string, logger zerolog.Logger) *Server {
	return &Server{
		started:  time.Now(),
		store:    store,
		provider: provider,
		logger:   logger,
	}
}

type status struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Store         string  `json:"store"`
	Provider      string  `json:"provider"`
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status{
			Status:        "ok",
			UptimeSeconds: time.Since(s.started).Seconds(),
			Store:         s.store.Mode(),
			Provider:      s.provider,
		})
	})
	return mux
}

// ListenAndServe runs the endpoint until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info().Str("port", port).Msg("health endpoint listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
