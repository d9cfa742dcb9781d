package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"

	FailureRow = "row"
	FailureRun = "run"
)

// SweepMetrics registra as execuções da expiração de destaques
type SweepMetrics struct {
	duration *prometheus.HistogramVec
	expired  prometheus.Counter
	failures *prometheus.CounterVec
	skipped  *prometheus.CounterVec
}

// NewSweepMetrics registra as métricas no registerer informado. Registerer
// nil devolve uma instância que não registra nada.
func NewSweepMetrics(reg prometheus.Registerer) *SweepMetrics {
	if reg == nil {
		return &SweepMetrics{}
	}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "highlight_sweep_duration_seconds",
		Help:    "Duração das execuções de expiração de destaques.",
		Buckets: prometheus.DefBuckets,
	}, []string{"trigger"})
	expired := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "highlight_sweep_expired_total",
		Help: "Destaques expirados pela varredura.",
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "highlight_sweep_failures_total",
		Help: "Falhas da varredura, por linha ou da execução inteira.",
	}, []string{"kind"})
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "highlight_sweep_skipped_total",
		Help: "Execuções puladas (lock em uso, execução em andamento ou expiração desabilitada).",
	}, []string{"reason"})

	reg.MustRegister(duration, expired, failures, skipped)
	return &SweepMetrics{
		duration: duration,
		expired:  expired,
		failures: failures,
		skipped:  skipped,
	}
}

func (m *SweepMetrics) ObserveDuration(trigger string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(trigger)).Observe(d.Seconds())
}

func (m *SweepMetrics) AddExpired(count int) {
	if m == nil || m.expired == nil || count <= 0 {
		return
	}
	m.expired.Add(float64(count))
}

func (m *SweepMetrics) AddFailures(kind string, count int) {
	if m == nil || m.failures == nil || count <= 0 {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(kind)).Add(float64(count))
}

func (m *SweepMetrics) IncSkipped(reason string) {
	if m == nil || m.skipped == nil {
		return
	}
	m.skipped.WithLabelValues(normalizeLabel(reason)).Inc()
}

// Handler expõe as métricas do gatherer no formato do Prometheus
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
