// Package metrics exposes Prometheus instrumentation for the admin
// service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	DirectoryListings  prometheus.Counter
	AlertsDispatched   *prometheus.CounterVec
	AlertEmailFailures prometheus.Counter
	WelcomeEmailsSent  prometheus.Counter
	CheckoutSessions   prometheus.Counter
}

// New registers all collectors against reg and returns the handle.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "staffdesk",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "staffdesk",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		DirectoryListings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "staffdesk",
			Name:      "directory_listings_total",
			Help:      "Admin client-directory listings served.",
		}),
		AlertsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "staffdesk",
			Name:      "alerts_dispatched_total",
			Help:      "Admin alerts dispatched by type.",
		}, []string{"alert_type"}),
		AlertEmailFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "staffdesk",
			Name:      "alert_email_failures_total",
			Help:      "Alert recipient deliveries that failed.",
		}),
		WelcomeEmailsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "staffdesk",
			Name:      "welcome_emails_sent_total",
			Help:      "Welcome emails sent to client accounts.",
		}),
		CheckoutSessions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "staffdesk",
			Name:      "checkout_sessions_total",
			Help:      "Stripe checkout sessions created.",
		}),
	}
}

// HTTPMiddleware instruments request counts and latency.
func (m *Metrics) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		m.HTTPRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rw.status)).Inc()
		m.HTTPDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter

	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
