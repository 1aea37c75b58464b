package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/swapmarket/pushrelay/pkg/logger"
)

// OpsRouter builds the operational endpoints served by this process:
//
//   - GET /healthz  — liveness, always 200 while the process runs
//   - GET /readyz   — readiness, 200 only when every dependency check passes
//   - GET /metrics  — prometheus exposition
//
// Dependency checks are the healthcheck functions exposed by the mongo and
// redis packages.
func OpsRouter(log *slog.Logger, checks ...func(context.Context) error) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		for _, check := range checks {
			if err := check(req.Context()); err != nil {
				log.ErrorContext(req.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
