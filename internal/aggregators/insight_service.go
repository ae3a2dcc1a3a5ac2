package aggregators

import (
	"context"
	"errors"

	"traffic-insights/internal/models"
	"traffic-insights/internal/shared/loggers"
	"traffic-insights/internal/shared/svcerrors"
	"traffic-insights/internal/stats"
	"traffic-insights/internal/stores"
)

//go:generate mockgen -source=insight_service.go -destination=./mocks/insight_service_mock.go -package=mocks
type InsightService interface {
	// Rebuild recomputes the study's insight from its full stored record
	// set and upserts the result.
	Rebuild(ctx context.Context, studyID string) *svcerrors.ServiceError
	// GetInsight returns the latest stored insight for the study.
	GetInsight(ctx context.Context, studyID string) (*models.StudyInsight, *svcerrors.ServiceError)
}

type insightService struct {
	batchStore   stores.RecordBatchStore
	deviceStore  stores.DeviceObservationsStore
	insightStore stores.StudyInsightStore
	binScheme    models.BinScheme

	dailyAggregator  *stats.BucketAggregator
	hourlyAggregator *stats.BucketAggregator
}

func NewInsightService(batchStore stores.RecordBatchStore, deviceStore stores.DeviceObservationsStore, insightStore stores.StudyInsightStore, binScheme models.BinScheme) InsightService {
	return &insightService{
		batchStore:       batchStore,
		deviceStore:      deviceStore,
		insightStore:     insightStore,
		binScheme:        binScheme,
		dailyAggregator:  stats.NewBucketAggregator(models.GranularityDaily),
		hourlyAggregator: stats.NewBucketAggregator(models.GranularityHourly),
	}
}

func (s *insightService) Rebuild(ctx context.Context, studyID string) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldStudyID, studyID).Msg("started rebuilding study insight")

	batches, err := s.batchStore.ListByStudy(ctx, studyID)
	if err != nil {
		return errInternalRecordBatchStoreFailed(err)
	}

	var records []models.IntervalRecord
	for _, batch := range batches {
		records = append(records, batch.Records...)
	}

	observations, err := s.deviceStore.Get(ctx, studyID)
	if err != nil {
		return errInternalDeviceObservationsStoreFailed(err)
	}
	var external models.ExternalPercentileMap
	var vehicleSpeeds []float64
	if observations != nil {
		external = observations.PercentilesByDate
		vehicleSpeeds = observations.VehicleSpeeds
	}

	insight := s.compute(studyID, records, vehicleSpeeds, external)

	isNew := false
	if _, err := s.insightStore.Get(ctx, studyID); err != nil {
		if !errors.Is(err, stores.ErrStudyInsightNotFound) {
			return errInternalStudyInsightStoreFailed(err)
		}
		isNew = true
	}

	if err := s.insightStore.Upsert(ctx, insight); err != nil {
		return errInternalStudyInsightStoreFailed(err)
	}

	if isNew {
		metricStudyInsightCreatedTotal.Inc()
	}
	metricStudyInsightRebuiltTotal.Inc()

	logger.Debug().
		Str(loggers.FieldStudyID, studyID).
		Int("record_count", len(records)).
		Int("batch_count", len(batches)).
		Msg("study insight rebuilt")
	return nil
}

func (s *insightService) GetInsight(ctx context.Context, studyID string) (*models.StudyInsight, *svcerrors.ServiceError) {
	insight, err := s.insightStore.Get(ctx, studyID)
	if err != nil {
		if errors.Is(err, stores.ErrStudyInsightNotFound) {
			return nil, errStudyInsightNotFound(err)
		}
		return nil, errInternalStudyInsightStoreFailed(err)
	}
	return insight, nil
}

// compute runs the aggregation core over the materialized record set. It
// is deterministic: batches arrive in batch-ID order and the aggregators
// sort their output chronologically, so rebuilding from unchanged inputs
// yields an identical insight.
func (s *insightService) compute(studyID string, records []models.IntervalRecord, vehicleSpeeds []float64, external models.ExternalPercentileMap) *models.StudyInsight {
	bins := s.binScheme.Table()

	var counts []int64
	if len(vehicleSpeeds) > 0 {
		counts = stats.BinCountsFromSpeeds(vehicleSpeeds, bins)
	} else {
		counts = stats.BinCounts(records, bins)
	}

	return &models.StudyInsight{
		StudyID:       studyID,
		Report:        stats.Summarize(records, vehicleSpeeds, external),
		DailyBuckets:  s.dailyAggregator.Aggregate(records, external),
		HourlyBuckets: s.hourlyAggregator.Aggregate(records, external),
		HourOfDay:     stats.HourOfDayProfile(records),
		SpeedHistogram: models.SpeedHistogram{
			Scheme:    s.binScheme,
			Bins:      bins,
			Counts:    counts,
			BinnedP85: stats.PercentileFromBins(counts, bins, 0.85),
		},
	}
}
