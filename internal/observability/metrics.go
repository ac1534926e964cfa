package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ShimLiveAllocations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tlasitter_shim_live_allocations",
		Help: "Number of engine allocations currently outstanding.",
	})

	ShimLiveBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tlasitter_shim_live_bytes",
		Help: "Bytes currently handed to the parser engine.",
	})

	ShimAllocationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tlasitter_shim_allocations_total",
		Help: "Total number of allocation requests served for the parser engine.",
	})

	ShimReleasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tlasitter_shim_releases_total",
		Help: "Total number of blocks returned to the host allocator.",
	})

	ShimResizesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tlasitter_shim_resizes_total",
		Help: "Total number of resize requests served for the parser engine.",
	})

	ShimAssertionFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tlasitter_shim_assertion_failures_total",
		Help: "Total number of internal assertion failures reported by the parser tables.",
	})
)

// ShimHook feeds shim activity into the metrics above. It satisfies
// cshim.StatsHook without that package importing prometheus.
type ShimHook struct{}

func (ShimHook) Allocated(bytes uintptr) {
	ShimAllocationsTotal.Inc()
	ShimLiveAllocations.Inc()
	ShimLiveBytes.Add(float64(bytes))
}

func (ShimHook) Released(bytes uintptr) {
	ShimReleasesTotal.Inc()
	ShimLiveAllocations.Dec()
	ShimLiveBytes.Sub(float64(bytes))
}

func (ShimHook) Resized(oldBytes, newBytes uintptr) {
	ShimResizesTotal.Inc()
	ShimLiveBytes.Add(float64(newBytes) - float64(oldBytes))
}

func (ShimHook) AssertionFailed() {
	ShimAssertionFailuresTotal.Inc()
}
