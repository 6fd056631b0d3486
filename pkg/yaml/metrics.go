package yaml

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure stages used as the "stage" label of the failures counter.
const (
	StageLimit    = "limit"
	StageTokenize = "tokenize"
	StageParse    = "parse"
)

// Metrics records load activity.
//
// Metrics:
//   - <namespace>_yaml_documents_total: documents parsed successfully
//   - <namespace>_yaml_failures_total: failed loads by stage
//   - <namespace>_yaml_load_duration_seconds: time spent per load
//   - <namespace>_yaml_tokens_total: tokens produced
//   - <namespace>_yaml_input_bytes: size of each input
type Metrics struct {
	documents  prometheus.Counter
	failures   *prometheus.CounterVec
	duration   prometheus.Histogram
	tokens     prometheus.Counter
	inputBytes prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// uses a private registry, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)
	return &Metrics{
		documents: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "yaml",
			Name:      "documents_total",
			Help:      "Total number of YAML documents parsed successfully",
		}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "yaml",
			Name:      "failures_total",
			Help:      "Total number of failed loads by stage",
		}, []string{"stage"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "yaml",
			Name:      "load_duration_seconds",
			Help:      "Time spent tokenizing and parsing one input",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		tokens: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "yaml",
			Name:      "tokens_total",
			Help:      "Total number of tokens produced by the tokenizer",
		}),
		inputBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "yaml",
			Name:      "input_bytes",
			Help:      "Size of loaded inputs in bytes",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 10), // 64B to 16MiB
		}),
	}
}

func (m *Metrics) observeInput(size int) {
	if m == nil {
		return
	}
	m.inputBytes.Observe(float64(size))
}

func (m *Metrics) observeTokens(n int) {
	if m == nil {
		return
	}
	m.tokens.Add(float64(n))
}

func (m *Metrics) observeSuccess(documents int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.documents.Add(float64(documents))
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) observeFailure(stage string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(stage).Inc()
	m.duration.Observe(elapsed.Seconds())
}
