package engine

import "github.com/prometheus/client_golang/prometheus"

var (
	mPayloadsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xumm_payloads_created_total",
		Help: "Number of submitted sign requests.",
	}, []string{"kind"})

	mPayloadsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "xumm_payloads_processed_total",
		Help: "Number of processed sign request outcomes.",
	}, []string{"kind", "status"})
)

// Metrics returns the engine collectors for registration.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{mPayloadsCreated, mPayloadsProcessed}
}
