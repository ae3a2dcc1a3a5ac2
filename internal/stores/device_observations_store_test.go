package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"traffic-insights/internal/models"
	"traffic-insights/internal/shared/filestorages"
	"traffic-insights/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testDeviceObservations() *models.DeviceObservations {
	return &models.DeviceObservations{
		StudyID: "study-1",
		PercentilesByDate: models.ExternalPercentileMap{
			"2025-06-02": {P50: 28.0, P85: 36.5},
		},
		VehicleSpeeds: []float64{22.5, 31.0, 28.4},
	}
}

func TestDeviceObservationsStore_Put_Overwrites(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDeviceObservationsStore(mockFileStorage)

	ctx := context.Background()
	observations := testDeviceObservations()
	expectedJSON, _ := json.Marshal(observations)

	mockFileStorage.EXPECT().
		Put(ctx, "device-observations/study-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			assert.True(t, opts.AllowOverwrite, "new uploads replace old ones")
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Put(ctx, observations)
	assert.NoError(t, err)
}

func TestDeviceObservationsStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDeviceObservationsStore(mockFileStorage)

	ctx := context.Background()
	observations := testDeviceObservations()
	jsonData, _ := json.Marshal(observations)

	mockFileStorage.EXPECT().
		Get(ctx, "device-observations/study-1.json").
		Return(io.NopCloser(bytes.NewReader(jsonData)), nil)

	got, err := store.Get(ctx, "study-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "study-1", got.StudyID)
	assert.Equal(t, 36.5, got.PercentilesByDate["2025-06-02"].P85)
	assert.Len(t, got.VehicleSpeeds, 3)
}

func TestDeviceObservationsStore_Get_NotFoundReturnsNil(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDeviceObservationsStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Get(ctx, "device-observations/study-1.json").
		Return(nil, filestorages.ErrFileNotFound)

	got, err := store.Get(ctx, "study-1")
	require.NoError(t, err, "missing upload is the normal case, not an error")
	assert.Nil(t, got)
}

func TestDeviceObservationsStore_Get_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewDeviceObservationsStore(mockFileStorage)

	ctx := context.Background()

	mockFileStorage.EXPECT().
		Get(ctx, "device-observations/study-1.json").
		Return(nil, errors.New("storage error"))

	got, err := store.Get(ctx, "study-1")
	assert.Error(t, err)
	assert.Nil(t, got)
}
