package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"usage-analytics/internal/shared/loggers"
	"usage-analytics/internal/shared/svcerrors"
	"usage-analytics/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwScrapeID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwObserve)
	router.Use(mwRecoverer)
}

// mwScrapeID tags each request with an id and a request-scoped logger.
// Scrapers never send x-request-id, so the id is normally minted here; an
// inbound one is honored so manual curl probes stay traceable.
func mwScrapeID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}

			scopedLogger := httpLogger.With().Str(loggers.FieldRequestID, id).Logger()
			next.ServeHTTP(w, r.WithContext(scopedLogger.WithContext(r.Context())))
		})
	}
}

// mwAppResponseWriter wraps the writer once so the observers downstream can
// read back the status and error code a handler produced.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// mwObserve times each request and reports it twice: as Prometheus series
// keyed by route pattern (raw paths would let a path scan blow up metric
// cardinality) and as a completion log line. Scrapes arrive on a schedule,
// so the line stays at debug level.
func mwObserve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(started)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}

		// A handler that writes no header is a 200
		status := http.StatusOK
		errorCode := ""
		if appWriter, ok := w.(*appResponseWriter); ok {
			if appWriter.Status() != 0 {
				status = appWriter.Status()
			}
			errorCode = appWriter.ErrorCode()
		}

		labels := []string{r.Method, route, strconv.Itoa(status), errorCode}
		metricHTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metricHTTPRequestDuration.WithLabelValues(labels...).Observe(elapsed.Seconds())

		loggers.Ctx(r.Context()).Debug().
			Str(loggers.FieldHttpMethod, r.Method).
			Str(loggers.FieldHttpPath, r.URL.Path).
			Int(loggers.FieldHttpStatus, status).
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Msg("request completed")
	})
}

// mwRecoverer turns a handler panic into a logged SYS_9000 response instead
// of tearing the debug server down mid-run.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}

			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("http panic recovered: %v", p)

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
		}()

		next.ServeHTTP(w, r)
	})
}
