package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	ObserveRequest(method, route string, status int, d time.Duration)
	InFlight(delta float64)
}

// Metrics records request count, latency and in-flight requests per route.
func Metrics(rec requestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec.InFlight(1)
			defer rec.InFlight(-1)

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			rec.ObserveRequest(r.Method, routeLabel(r), sw.status, time.Since(start))
		})
	}
}
