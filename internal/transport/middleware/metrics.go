package middleware

import (
	"net/http"
	"time"
)

type requestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// routeResolver is satisfied by *http.ServeMux.
type routeResolver interface {
	Handler(r *http.Request) (http.Handler, string)
}

// Metrics reports every request to obs. The route label is the matched
// ServeMux pattern so that path parameters do not inflate cardinality.
// Middleware between this one and the mux copy the request, so the pattern
// is resolved from routes rather than read back from r.
func Metrics(obs requestObserver, routes routeResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" && routes != nil {
				_, route = routes.Handler(r)
			}
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
