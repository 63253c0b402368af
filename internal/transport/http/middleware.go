package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sandevgo/uniadvisor/pkg/log"
)

// logRequests logs every request with its route pattern and duration and
// feeds the duration histogram.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		elapsed := time.Since(start)
		s.metrics.ObserveRequest(route, elapsed)
		log.FromCtx(r.Context()).Info().
			Str("method", r.Method).
			Str("route", route).
			Int("status", ww.Status()).
			Dur("elapsed", elapsed).
			Msg("http request")
	})
}
