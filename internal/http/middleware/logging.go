// Package middleware holds gorilla/mux middleware shared by the routes.
package middleware

import (
	"net/http"
	"time"

	"craft-store/internal/logger"
)

// Option configures LogRequests
type Option func(*config)

type config struct {
	skips map[string]struct{}
}

// WithSkips suppresses logging for the given paths (health probes etc.)
func WithSkips(paths ...string) Option {
	return func(c *config) {
		for _, p := range paths {
			c.skips[p] = struct{}{}
		}
	}
}

// statusRecorder captures the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LogRequests logs method, path, status and duration for every request
func LogRequests(opts ...Option) func(http.Handler) http.Handler {
	c := &config{skips: map[string]struct{}{}}
	for _, o := range opts {
		o(c)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, skip := c.skips[r.URL.Path]; skip {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Infof("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
