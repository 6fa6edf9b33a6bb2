package autofill

import "github.com/prometheus/client_golang/prometheus"

const (
	resultFilled  = "filled"
	resultFailed  = "failed"
	resultSkipped = "skipped"
)

// Metrics counts auto-fill outcomes per operation.
type Metrics struct {
	injections *prometheus.CounterVec
}

// NewMetrics creates the auto-fill counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		injections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sky",
			Subsystem: "autofill",
			Name:      "injections_total",
			Help:      "Audit field auto-fill attempts by operation and result.",
		}, []string{"operation", "result"}),
	}
	if reg != nil {
		reg.MustRegister(m.injections)
	}
	return m
}

func (m *Metrics) observe(op OperationType, result string) {
	if m == nil {
		return
	}
	m.injections.WithLabelValues(op.String(), result).Inc()
}
