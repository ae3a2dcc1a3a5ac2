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

// DeviceObservationsStore keeps the optional device-raw upload for a study:
// firmware-computed per-date percentiles and true per-vehicle speeds. At
// most one document exists per study; a new upload replaces the old one.
// Get returns nil without error when no upload exists, since absence is the
// normal case.
//
//go:generate mockgen -source=device_observations_store.go -destination=./mocks/device_observations_store_mock.go -package=mocks
type DeviceObservationsStore interface {
	Put(ctx context.Context, observations *models.DeviceObservations) error
	Get(ctx context.Context, studyID string) (*models.DeviceObservations, error)
}

type deviceObservationsStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewDeviceObservationsStore(fileStorage filestorages.FileStorage) DeviceObservationsStore {
	return &deviceObservationsStore{fileStorage: fileStorage, dir: "device-observations"}
}

func (s *deviceObservationsStore) Put(ctx context.Context, observations *models.DeviceObservations) error {
	jsonData, err := json.Marshal(observations)
	if err != nil {
		return fmt.Errorf("failed to marshal device observations: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	key := s.getKey(observations.StudyID)

	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put device observations: %w", err)
	}
	return nil
}

func (s *deviceObservationsStore) Get(ctx context.Context, studyID string) (*models.DeviceObservations, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(studyID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device observations: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read device observations: %w", err)
	}
	var observations models.DeviceObservations
	if err := json.Unmarshal(data, &observations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal device observations: %w", err)
	}
	return &observations, nil
}

func (s *deviceObservationsStore) getKey(studyID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, studyID)
}
