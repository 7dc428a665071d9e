package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter wraps the chi response writer and remembers the stable
// error code of a failed response, so the observe middleware can label its
// series with it after the handler returns.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	errorCode string
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetErrorCode(code string) {
	w.errorCode = code
}

func (w *appResponseWriter) ErrorCode() string {
	return w.errorCode
}
