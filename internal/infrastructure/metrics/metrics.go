package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts handled API requests
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dropops_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration tracks API latency
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dropops_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// WalletSignIns counts wallet sign-ins by result (ok, rejected, error)
	WalletSignIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dropops_wallet_signins_total",
			Help: "Total number of wallet sign-in attempts",
		},
		[]string{"result"},
	)

	// SessionCache counts session cache lookups (hit, miss, error)
	SessionCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dropops_session_cache_total",
			Help: "Session cache lookups by result",
		},
		[]string{"result"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
