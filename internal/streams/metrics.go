package streams

import (
	"traffic-insights/internal/shared/metrics"
)

var (
	streamStudyUpdates = "study_updates"

	metricStudyEventProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "study_event_published_total",
		},
		[]string{"stream_id"},
	)

	metricStudyEventConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "study_event_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
