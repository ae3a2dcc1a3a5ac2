package aggregators

import (
	"traffic-insights/internal/shared/metrics"
)

// metricStudyInsightCreatedTotal counts first-time insight computations:
// it increments only when a study gains an insight it never had before.
// metricStudyInsightRebuiltTotal counts every rebuild, first or not, so the
// ratio of the two shows how much rebuild traffic is updates to studies
// that were already summarized.
var (
	metricStudyInsightCreatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubInsight,
			Name:      "study_insight_created_total",
		},
	)

	metricStudyInsightRebuiltTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubInsight,
			Name:      "study_insight_rebuilt_total",
		},
	)
)
