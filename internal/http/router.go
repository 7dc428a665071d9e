package http

import (
	"net/http"

	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the debug HTTP router. It carries only
// operational endpoints; the tool itself has no request-serving surface.
func NewRouter(httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Routes
	router.Get("/healthz", handleHealthz)
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
