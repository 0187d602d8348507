package classify

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the classification subsystem.
type Metrics struct {
	ClassificationsTotal *prometheus.CounterVec
	Duration             prometheus.Histogram
	TokensPerRequest     prometheus.Histogram
	ItemsTotal           *prometheus.CounterVec
}

// NewMetrics registers and returns classification metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ClassificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bfhl_classifications_total",
			Help: "Total classification runs by outcome.",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bfhl_classification_duration_seconds",
			Help:    "Duration of classification runs in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us .. ~2.6s
		}),
		TokensPerRequest: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bfhl_classification_tokens",
			Help:    "Input tokens per classification run.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 .. ~262144
		}),
		ItemsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bfhl_classified_items_total",
			Help: "Total extracted items by category.",
		}, []string{"category"}),
	}

	reg.MustRegister(
		m.ClassificationsTotal,
		m.Duration,
		m.TokensPerRequest,
		m.ItemsTotal,
	)

	return m
}

// Hooks returns service Hooks that update the corresponding metrics.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnComplete: func(e *CompleteEvent) {
			outcome := "success"
			if !e.Success {
				outcome = "failure"
			}
			m.ClassificationsTotal.WithLabelValues(outcome).Inc()
			m.Duration.Observe(e.Duration)
			m.TokensPerRequest.Observe(float64(e.Tokens))
			m.ItemsTotal.WithLabelValues("odd").Add(float64(e.Odd))
			m.ItemsTotal.WithLabelValues("even").Add(float64(e.Even))
			m.ItemsTotal.WithLabelValues("alphabet").Add(float64(e.Letters))
			m.ItemsTotal.WithLabelValues("special").Add(float64(e.Special))
		},
	}
}
