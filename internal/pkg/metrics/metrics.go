package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, route and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)

	// PreviewOutcomes counts route previews by terminal status
	PreviewOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "routing_preview_requests_total", Help: "Route previews by terminal status."},
		[]string{"status"},
	)
	// ProviderDuration tracks routing provider call latency by provider and outcome
	ProviderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "routing_provider_request_duration_seconds", Help: "Routing provider call duration in seconds.", Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8}},
		[]string{"provider", "outcome"},
	)
	// MetricRejections counts provider replies rejected by leg metric validation
	MetricRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "routing_provider_metric_rejections_total", Help: "Provider leg metric rejections by reason."},
		[]string{"provider", "reason"},
	)
)

var regOnce sync.Once

// Register registers all collectors on Registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(PreviewOutcomes)
		Registry.MustRegister(ProviderDuration)
		Registry.MustRegister(MetricRejections)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ReasonKind strips the diagnostic suffix of a rejection reason
// ("duplicate_index:1" -> "duplicate_index") to keep label cardinality bounded.
func ReasonKind(reason string) string {
	if i := strings.IndexByte(reason, ':'); i >= 0 {
		return reason[:i]
	}
	return reason
}
