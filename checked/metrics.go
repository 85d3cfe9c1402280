package checked

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the validation counter.
const (
	outcomeAccepted = "accepted"
	outcomeCoerced  = "coerced"
	outcomeRejected = "rejected"
)

// validationsTotal counts every Check call by rule name and outcome.
//
// Labels:
//   - type: the rule name (e.g. "Indentation", "ReadIO").
//   - outcome: "accepted" if the predicate held on the raw value, "coerced"
//     if a coercion produced the canonical value, "rejected" otherwise.
//
// Useful queries:
//   - rate(checked_validations_total{outcome="rejected"}[5m]) - rejection rate
//   - sum(rate(checked_validations_total[5m])) by (type) - volume per rule
//
// Prometheus metrics are intentionally global: they are registered once and
// shared across the process.
var validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "checked_validations_total",
	Help: "The total number of values checked against a named rule",
}, []string{"type", "outcome"})

// init pre-initializes every label combination so that dashboards see a
// continuous time series from process start and rate() queries do not spike
// on the first observation.
func init() {
	for _, name := range Names() {
		for _, outcome := range []string{outcomeAccepted, outcomeCoerced, outcomeRejected} {
			validationsTotal.WithLabelValues(name, outcome).Add(0)
		}
	}
}

func observe(name, outcome string) {
	validationsTotal.WithLabelValues(name, outcome).Inc()
}
