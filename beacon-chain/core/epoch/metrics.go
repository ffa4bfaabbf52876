package epoch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	epochTransitionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "beacon_epoch_transition_seconds",
		Help:    "Time taken to process a full epoch transition",
		Buckets: prometheus.DefBuckets,
	})
	slashingsAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beacon_epoch_slashings_applied_total",
		Help: "Number of validators penalized by ProcessSlashings across all epoch transitions",
	})
)

// reportEpochTransitionMetrics records how long a single ProcessEpoch
// call took, the way reportEpochTransitionMetrics did for validator
// balances in the teacher's state package.
func reportEpochTransitionMetrics(start time.Time) {
	epochTransitionDuration.Observe(time.Since(start).Seconds())
}
