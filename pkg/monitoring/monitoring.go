package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "health_guide",
			Name:      "reports_generated_total",
			Help:      "Count of generated health reports by BMI category.",
		},
		[]string{"category"},
	)

	invalidInput = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "health_guide",
			Name:      "invalid_input_total",
			Help:      "Count of rejected submissions by input source.",
		},
		[]string{"source"},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reportsGenerated, invalidInput)
	})
}

func IncReportGenerated(category string) {
	reportsGenerated.WithLabelValues(category).Inc()
}

func IncInvalidInput(source string) {
	invalidInput.WithLabelValues(source).Inc()
}
