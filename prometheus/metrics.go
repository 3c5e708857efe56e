package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "meroprofile_login_total",
			Help: "Total number of login attempts",
		},
	)

	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "meroprofile_register_total",
			Help: "Total number of user registrations",
		},
	)

	OAuthLoginCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meroprofile_oauth_login_total",
			Help: "Total number of OAuth sign-ins by provider",
		},
		[]string{"provider"},
	)

	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meroprofile_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"},
	)

	SearchCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "meroprofile_search_total",
			Help: "Total number of listing searches",
		},
	)

	ListingCreatedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meroprofile_listing_created_total",
			Help: "Total number of profiles created by kind",
		},
		[]string{"kind"}, // "business" or "professional"
	)

	UploadCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meroprofile_uploads_total",
			Help: "Total number of image uploads by prefix and outcome",
		},
		[]string{"prefix", "outcome"},
	)

	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meroprofile_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Histogram metrics
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meroprofile_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meroprofile_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "query", "insert", "update", "delete"
	)
)

// Gauge metrics
var (
	ActiveTokensGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "meroprofile_active_tokens",
			Help: "Number of currently active authentication tokens",
		},
	)

	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "meroprofile_info",
			Help: "Information about the directory service",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(RegisterCounter)
	prometheus.MustRegister(OAuthLoginCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(SearchCounter)
	prometheus.MustRegister(ListingCreatedCounter)
	prometheus.MustRegister(UploadCounter)
	prometheus.MustRegister(HTTPRequestCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)

	prometheus.MustRegister(ActiveTokensGauge)
	prometheus.MustRegister(InfoGauge)

	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}

// IncreaseActiveTokens increments the active tokens gauge
func IncreaseActiveTokens() {
	ActiveTokensGauge.Inc()
}

// DecreaseActiveTokens decrements the active tokens gauge
func DecreaseActiveTokens() {
	ActiveTokensGauge.Dec()
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordUpload records an image upload attempt
func RecordUpload(prefix, outcome string) {
	UploadCounter.With(prometheus.Labels{"prefix": prefix, "outcome": outcome}).Inc()
}

// RecordListingCreated records a created profile by kind
func RecordListingCreated(kind string) {
	ListingCreatedCounter.With(prometheus.Labels{"kind": kind}).Inc()
}
