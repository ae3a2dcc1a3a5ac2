package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"traffic-insights/internal/models"
	"traffic-insights/internal/shared/filestorages"
)

var (
	ErrRecordBatchAlreadyExists = errors.New("record batch already exists")
)

// RecordBatchStore keeps the raw interval-record uploads for each study.
// Put performs an atomic create-if-not-exists, so re-sending a batch under
// the same idempotency key is detected and rejected rather than double
// counted. ListByStudy returns every stored batch for a study in batch-ID
// order; the study's full record set is their concatenation.
//
//go:generate mockgen -source=record_batch_store.go -destination=./mocks/record_batch_store_mock.go -package=mocks
type RecordBatchStore interface {
	Put(ctx context.Context, batch *models.RecordBatch) error
	ListByStudy(ctx context.Context, studyID string) ([]*models.RecordBatch, error)
}

type recordBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRecordBatchStore(fileStorage filestorages.FileStorage) RecordBatchStore {
	return &recordBatchStore{fileStorage: fileStorage, dir: "record-batches"}
}

func (s *recordBatchStore) Put(ctx context.Context, batch *models.RecordBatch) error {
	jsonData, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal record batch: %w", err)
	}
	reader := bytes.NewReader(jsonData)

	key := fmt.Sprintf("%s/%s/%s.json", s.dir, batch.StudyID, batch.BatchID)

	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrRecordBatchAlreadyExists
		}
		return fmt.Errorf("failed to put record batch: %w", err)
	}
	return nil
}

func (s *recordBatchStore) ListByStudy(ctx context.Context, studyID string) ([]*models.RecordBatch, error) {
	prefix := fmt.Sprintf("%s/%s", s.dir, studyID)
	keys, err := s.fileStorage.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list record batches: %w", err)
	}

	batches := make([]*models.RecordBatch, 0, len(keys))
	for _, key := range keys {
		batch, err := s.getByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

func (s *recordBatchStore) getByKey(ctx context.Context, key string) (*models.RecordBatch, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get record batch %q: %w", key, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read record batch %q: %w", key, err)
	}
	var batch models.RecordBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record batch %q: %w", key, err)
	}
	return &batch, nil
}
