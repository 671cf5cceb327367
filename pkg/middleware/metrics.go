package middleware

import (
	"net/http"
	"strconv"
	"time"

	"transfer-booking/pkg/metrics"
)

// Metrics middleware records request durations
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			metrics.ObserveHTTP(r.Method, strconv.Itoa(rw.statusCode), time.Since(start).Seconds())
		})
	}
}
