package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"careerportal-api/metrics"
)

const slowRequestThreshold = 500 * time.Millisecond

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging records every request at debug level and promotes slow or failed
// ones to warn. It also feeds the request latency histogram.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		elapsed := time.Since(start)
		route := routeTemplate(r)
		metrics.ObserveRequest(route, r.Method, wrapper.status, elapsed)

		logger := zerolog.Ctx(r.Context())
		event := logger.Debug()
		if elapsed > slowRequestThreshold || wrapper.status >= http.StatusBadRequest {
			event = logger.Warn()
		}
		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("route", route).
			Str("remote_addr", r.RemoteAddr).
			Int("status", wrapper.status).
			Dur("elapsed", elapsed).
			Msg("request handled")
	})
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tpl
}
