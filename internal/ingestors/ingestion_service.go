package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"traffic-insights/internal/events"
	"traffic-insights/internal/models"
	"traffic-insights/internal/shared/loggers"
	"traffic-insights/internal/shared/metrics"
	"traffic-insights/internal/shared/ulid"
	"traffic-insights/internal/stores"
	"traffic-insights/internal/streams"
)

const (
	maxBatchBytes        = 2 * 1024 * 1024
	maxObservationsBytes = 8 * 1024 * 1024
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID     string `json:"batchId"`
	RecordCount int    `json:"recordCount"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch stores a batch of interval records for a study and
	// triggers an insight rebuild.
	IngestBatch(ctx context.Context, studyID string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
	// PutDeviceObservations replaces the study's device-raw upload and
	// triggers an insight rebuild.
	PutDeviceObservations(ctx context.Context, studyID string, r io.Reader) error
}

type ingestionService struct {
	batchStore         stores.RecordBatchStore
	deviceStore        stores.DeviceObservationsStore
	studyEventProducer streams.StudyEventProducer
}

func NewIngestionService(batchStore stores.RecordBatchStore, deviceStore stores.DeviceObservationsStore, studyEventProducer streams.StudyEventProducer) IngestionService {
	return &ingestionService{
		batchStore:         batchStore,
		deviceStore:        deviceStore,
		studyEventProducer: studyEventProducer,
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, studyID string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStudyID, studyID).
		Msgf("started ingesting record batch with idempotency key: %s, format: %s", idempotencyKey, format)

	records, err := s.validateRecordBatch(studyID, format, r)
	if err != nil {
		return nil, err
	}

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	}

	batch := &models.RecordBatch{
		BatchID: batchID,
		StudyID: studyID,
		Records: records,
	}

	if err := s.batchStore.Put(ctx, batch); err != nil {
		if errors.Is(err, stores.ErrRecordBatchAlreadyExists) {
			svcError := errRecordBatchAlreadyProcessed(err)
			metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		return nil, errInternalRecordBatchStoreFailed(err)
	}

	event := events.StudyUpdatedEvent{StudyID: studyID, BatchID: batchID}
	if err := s.studyEventProducer.Produce(ctx, event); err != nil {
		return nil, errInternalStudyEventPublishFailed(err)
	}

	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRecordsIngestedTotal.Add(float64(len(records)))

	logger.Debug().
		Str(loggers.FieldStudyID, studyID).
		Str(loggers.FieldBatchID, batchID).
		Int("record_count", len(records)).
		Msg("record batch ingested")
	return &IngestResult{BatchID: batchID, RecordCount: len(records)}, nil
}

func (s *ingestionService) PutDeviceObservations(ctx context.Context, studyID string, r io.Reader) error {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldStudyID, studyID).Msg("started storing device observations")

	observations, err := s.validateDeviceObservations(studyID, r)
	if err != nil {
		return err
	}

	if err := s.deviceStore.Put(ctx, observations); err != nil {
		return errInternalDeviceObservationsStoreFailed(err)
	}

	event := events.StudyUpdatedEvent{StudyID: studyID}
	if err := s.studyEventProducer.Produce(ctx, event); err != nil {
		return errInternalStudyEventPublishFailed(err)
	}

	metricDeviceObservationsStoredTotal.Inc()
	return nil
}

func (s *ingestionService) validateRecordBatch(studyID string, format string, r io.Reader) ([]models.IntervalRecord, error) {
	if studyID == "" {
		return nil, errValidationFailed("studyID is required", nil)
	}
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := s.readWithLimit(r, maxBatchBytes)
	if err != nil {
		return nil, errValidationFailed("batch too large: must be <= 2MB", nil)
	}

	var records []models.IntervalRecord
	formatLower := strings.ToLower(format)
	switch {
	case strings.Contains(formatLower, FormatJSON):
		records, err = parseJSONRecords(buf)
	case strings.Contains(formatLower, FormatCSV):
		records, err = parseCSVRecords(buf)
	default:
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errValidationFailed("interval records cannot be empty", nil)
	}
	return records, nil
}

func (s *ingestionService) validateDeviceObservations(studyID string, r io.Reader) (*models.DeviceObservations, error) {
	if studyID == "" {
		return nil, errValidationFailed("studyID is required", nil)
	}
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := s.readWithLimit(r, maxObservationsBytes)
	if err != nil {
		return nil, errValidationFailed("device observations too large: must be <= 8MB", nil)
	}

	var observations models.DeviceObservations
	if err := json.Unmarshal(buf, &observations); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}
	if len(observations.PercentilesByDate) == 0 && len(observations.VehicleSpeeds) == 0 {
		return nil, errValidationFailed("device observations cannot be empty", nil)
	}
	for date := range observations.PercentilesByDate {
		if !validISODate(date) {
			return nil, errValidationFailed(fmt.Sprintf("invalid date key %q: must be YYYY-MM-DD", date), nil)
		}
	}

	observations.StudyID = studyID
	return &observations, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	limitedReader := io.LimitReader(r, int64(max+1))
	buf, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, err
	}
	if len(buf) > max {
		return nil, errValidationFailed("body too large", nil)
	}
	return buf, nil
}
