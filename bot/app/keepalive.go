package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"github.com/m3rciful/classbot/core/logger"
)

// KeepAlive serves the ping endpoint free-tier hosts poll to keep the
// process alive.
type KeepAlive struct {
	srv *http.Server
}

// NewKeepAlive builds the keep-alive server; empty listen disables it.
func NewKeepAlive(listen string) *KeepAlive {
	if listen == "" {
		return nil
	}
	r := chi.NewRouter()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &KeepAlive{
		srv: &http.Server{
			Addr:              listen,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start runs the listener until ctx is done.
func (k *KeepAlive) Start(ctx context.Context) {
	if k == nil {
		return
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = k.srv.Shutdown(shutdownCtx)
	}()
	go func() {
		logger.Info(logger.Background(), "keepalive", "listen",
			slog.String("listen", k.srv.Addr),
		)
		if err := k.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(logger.Background(), "keepalive", "listen",
				slog.String("err", err.Error()),
			)
		}
	}()
}
