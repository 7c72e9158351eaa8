package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path"},
	)
	// OpDuration records timed operations (allocation, routing, storage).
	OpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "operation_duration_seconds", Help: "Duration of internal operations in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"op", "outcome"},
	)
	// TrucksAllocated is the number of truck loads in the latest allocation.
	TrucksAllocated = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "trucks_allocated", Help: "Truck loads produced by the latest allocation."},
	)
	// PackagesAllocated is the number of packages in the latest allocation.
	PackagesAllocated = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "packages_allocated", Help: "Packages covered by the latest allocation."},
	)
)

var regOnce sync.Once

// Register adds all collectors to Registry. It is safe to call repeatedly.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(OpDuration)
		Registry.MustRegister(TrucksAllocated)
		Registry.MustRegister(PackagesAllocated)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
