package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transfer_booking",
			Name:      "bookings_created_total",
			Help:      "Bookings accepted, by payment method.",
		},
		[]string{"payment_method"},
	)

	bookingsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transfer_booking",
			Name:      "bookings_rejected_total",
			Help:      "Booking submissions rejected before persistence.",
		},
		[]string{"reason"},
	)

	paymentsObserved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transfer_booking",
			Name:      "payments_total",
			Help:      "Card payment outcomes reported by the gateway.",
		},
		[]string{"status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "transfer_booking",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by method and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, bookingsRejected, paymentsObserved, httpDuration)
	})
}

// IncBookingCreated increments the accepted-bookings counter.
func IncBookingCreated(paymentMethod string) {
	bookingsCreated.WithLabelValues(paymentMethod).Inc()
}

// IncBookingRejected increments the rejected-submissions counter.
func IncBookingRejected(reason string) {
	bookingsRejected.WithLabelValues(reason).Inc()
}

// IncPayment increments the gateway-outcome counter.
func IncPayment(status string) {
	paymentsObserved.WithLabelValues(status).Inc()
}

// ObserveHTTP records a request duration sample.
func ObserveHTTP(method, status string, seconds float64) {
	httpDuration.WithLabelValues(method, status).Observe(seconds)
}
