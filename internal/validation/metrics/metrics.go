package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the validations counter.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

type Metrics struct {
	ValidationsTotal     *prometheus.CounterVec
	CheckDigitsGenerated prometheus.Counter
	GenerateFailures     prometheus.Counter
}

// New registers all validation metrics on reg. Tests pass a fresh
// prometheus.NewRegistry so repeated setup does not collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pramaan_validations_total",
			Help: "Total number of Aadhaar checksum validations by outcome",
		}, []string{"outcome"}),
		CheckDigitsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "pramaan_check_digits_generated_total",
			Help: "Total number of check digits generated",
		}),
		GenerateFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "pramaan_check_digit_failures_total",
			Help: "Total number of generate requests rejected for malformed prefixes",
		}),
	}
}

func (m *Metrics) ObserveValidation(valid bool) {
	outcome := OutcomeInvalid
	if valid {
		outcome = OutcomeValid
	}
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementGenerated() {
	m.CheckDigitsGenerated.Inc()
}

func (m *Metrics) IncrementGenerateFailures() {
	m.GenerateFailures.Inc()
}
