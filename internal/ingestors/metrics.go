package ingestors

import (
	"traffic-insights/internal/shared/metrics"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "record_batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRecordsIngestedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "interval_records_ingested_total",
		},
	)

	metricDeviceObservationsStoredTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "device_observations_stored_total",
		},
	)
)
