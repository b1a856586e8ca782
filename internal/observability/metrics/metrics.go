package metrics

import "github.com/prometheus/client_golang/prometheus"

// GatewayMetrics exposes counters/histograms for gateway calls and webhook
// reconciliations. All observe methods are nil-safe so wiring metrics stays
// optional in tests.
type GatewayMetrics struct {
	opsTotal      *prometheus.CounterVec
	failuresTotal *prometheus.CounterVec
	opLatency     *prometheus.HistogramVec
	webhooksTotal *prometheus.CounterVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paygate",
			Subsystem: "gateway",
			Name:      "operations_total",
			Help:      "Total lifecycle operations by gateway and operation",
		}, []string{"gateway", "op"}),
		failuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paygate",
			Subsystem: "gateway",
			Name:      "operation_failures_total",
			Help:      "Lifecycle operations that surfaced an error",
		}, []string{"gateway", "op"}),
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "paygate",
			Subsystem: "gateway",
			Name:      "operation_latency_seconds",
			Help:      "Latency of gateway lifecycle operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"gateway", "op"}),
		webhooksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paygate",
			Subsystem: "webhook",
			Name:      "reconciliations_total",
			Help:      "Total webhook reconciliations by gateway and resulting action",
		}, []string{"gateway", "action"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.opsTotal, m.failuresTotal, m.opLatency, m.webhooksTotal)
	return m
}

func (m *GatewayMetrics) ObserveOp(gateway, op string, seconds float64) {
	if m == nil {
		return
	}
	m.opsTotal.WithLabelValues(gateway, op).Inc()
	m.opLatency.WithLabelValues(gateway, op).Observe(seconds)
}

func (m *GatewayMetrics) ObserveFailure(gateway, op string) {
	if m == nil {
		return
	}
	m.failuresTotal.WithLabelValues(gateway, op).Inc()
}

func (m *GatewayMetrics) ObserveWebhook(gateway, action string) {
	if m == nil {
		return
	}
	m.webhooksTotal.WithLabelValues(gateway, action).Inc()
}
