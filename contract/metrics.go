package contract

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Apply outcomes recorded on the applications counter.
const (
	outcomeValid          = "valid"
	outcomeRejected       = "rejected"
	outcomeCoerced        = "coerced"
	outcomeCoercionFailed = "coercion_failed"
)

var (
	// applicationsTotal counts every Apply call, labeled by contract name and
	// outcome. The outcome label distinguishes containers that passed as-is
	// (valid), failed with coercion disabled (rejected), were repaired
	// (coerced), and failed even after coercion (coercion_failed), so
	// dashboards can watch coercion rates per contract.
	//
	// The nolint:gochecknoglobals directive is used because Prometheus metrics
	// are intentionally global by design - they need to be registered once and
	// accessed throughout the application lifecycle.
	applicationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "contract_applications_total",
		Help: "The total number of calls to contract.Apply",
	}, []string{"contract", "outcome"})

	// evaluationsTotal counts predicate-only checks (contract.Evaluate),
	// labeled by contract name and result.
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "contract_evaluations_total",
		Help: "The total number of calls to contract.Evaluate",
	}, []string{"contract", "holds"})

	// applyTime tracks Apply duration in milliseconds, labeled by contract
	// name. Predicates run in a single pass over in-memory data, so the
	// buckets skew toward the sub-10ms range; the larger buckets exist to
	// surface pathological container sizes.
	applyTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "contract_apply_time_millis",
		Help: "The time it takes to apply a contract, in milliseconds",
		Buckets: []float64{
			0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 500, 1000,
		},
	}, []string{"contract"})
)

func recordApplication(contract, outcome string, elapsed time.Duration) {
	applicationsTotal.WithLabelValues(contract, outcome).Inc()
	applyTime.WithLabelValues(contract).Observe(float64(elapsed) / float64(time.Millisecond))
}

func recordEvaluation(contract string, holds bool) {
	if holds {
		evaluationsTotal.WithLabelValues(contract, "true").Inc()
	} else {
		evaluationsTotal.WithLabelValues(contract, "false").Inc()
	}
}
