package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// requestIDHeader is echoed on every response. chi's RequestID middleware
// reads the same header (canonical form X-Request-Id) from the request.
const requestIDHeader = "X-Request-ID"

// Routes builds the router. ratePerMinute limits report requests per client IP.
func (h *Handler) Routes(ratePerMinute int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(echoRequestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	limiter := httprate.Limit(ratePerMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests), middleware.GetReqID(r.Context()))
		}),
	)

	r.Get("/healthz", h.handleHealth)
	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(limiter)
		v1.Post("/reports", h.handleCreateReport)
	})

	return r
}

func echoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(requestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		h.logger.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
