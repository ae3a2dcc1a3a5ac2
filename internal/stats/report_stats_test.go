package stats

import (
	"testing"
	"time"

	"traffic-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intervalAt(hour int, vehicles, violators int64, avgSpeed, peakSpeed, directP85 float64) models.IntervalRecord {
	return models.IntervalRecord{
		Timestamp:     time.Date(2024, 6, 1, hour, 0, 0, 0, time.UTC),
		VehicleCount:  vehicles,
		ViolatorCount: violators,
		AvgSpeed:      avgSpeed,
		PeakSpeed:     peakSpeed,
		DirectP85:     directP85,
	}
}

func TestSummarize_TotalsAndRate(t *testing.T) {
	t.Parallel()

	records := []models.IntervalRecord{
		intervalAt(8, 100, 20, 35, 52, 0),
		intervalAt(9, 50, 5, 30, 48, 0),
		intervalAt(10, 50, 0, 0, 0, 0),
	}

	result := Summarize(records, nil, nil)

	assert.Equal(t, int64(200), result.TotalVehicles)
	assert.Equal(t, int64(25), result.TotalViolators)
	assert.Equal(t, 12.5, result.ViolationRate)
	assert.Equal(t, 52.0, result.PeakSpeed)
	// (35*100 + 30*50) / 150
	assert.InDelta(t, 5000.0/150.0, result.AvgSpeed, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	result := Summarize(nil, nil, nil)

	assert.Equal(t, int64(0), result.TotalVehicles)
	assert.Equal(t, 0.0, result.ViolationRate, "no vehicles means rate 0, not NaN")
	assert.Equal(t, 0.0, result.AvgSpeed)
	assert.Equal(t, 0.0, result.PeakSpeed)
	assert.Nil(t, result.P85)
}

func TestSummarize_P85Tier1_VehicleSpeeds(t *testing.T) {
	t.Parallel()

	records := []models.IntervalRecord{intervalAt(8, 10, 1, 30, 0, 44)}
	speeds := make([]float64, 0, 101)
	speeds = append(speeds, -5) // filtered out
	for i := 1; i <= 100; i++ {
		speeds = append(speeds, float64(i))
	}
	external := models.ExternalPercentileMap{"2024-06-01": {P85: 60}}

	result := Summarize(records, speeds, external)

	require.NotNil(t, result.P85)
	assert.Equal(t, 85.0, *result.P85, "true per-vehicle speeds outrank every other source")
}

func TestSummarize_P85Tier2_ExternalMapMean(t *testing.T) {
	t.Parallel()

	records := []models.IntervalRecord{intervalAt(8, 10, 1, 30, 0, 44)}
	external := models.ExternalPercentileMap{
		"2024-06-01": {P85: 40},
		"2024-06-02": {P85: 44},
		"2024-06-03": {P85: 0}, // zero entries are skipped
	}

	result := Summarize(records, nil, external)

	require.NotNil(t, result.P85)
	assert.Equal(t, 42.0, *result.P85)
}

func TestSummarize_P85Tier3_DirectMean(t *testing.T) {
	t.Parallel()

	records := []models.IntervalRecord{
		intervalAt(8, 10, 1, 30, 0, 38),
		intervalAt(9, 10, 1, 31, 0, 42),
		intervalAt(10, 10, 1, 29, 0, 0), // zero direct p85 reads as absent
	}

	result := Summarize(records, nil, nil)

	require.NotNil(t, result.P85)
	assert.Equal(t, 40.0, *result.P85)
}

func TestSummarize_P85Tier4_DerivedFromAverages(t *testing.T) {
	t.Parallel()

	records := []models.IntervalRecord{
		intervalAt(8, 10, 1, 30, 0, 0),
		intervalAt(9, 10, 1, 34, 0, 0),
		intervalAt(10, 10, 1, 32, 0, 0),
	}

	result := Summarize(records, nil, nil)

	require.NotNil(t, result.P85)
	assert.Equal(t, 34.0, *result.P85)
}

func TestSummarize_AllZeroExternalFallsThrough(t *testing.T) {
	t.Parallel()

	records := []models.IntervalRecord{intervalAt(8, 10, 1, 30, 0, 41)}
	external := models.ExternalPercentileMap{"2024-06-01": {P85: 0}}

	result := Summarize(records, nil, external)

	require.NotNil(t, result.P85)
	assert.Equal(t, 41.0, *result.P85, "a map with only zero entries is no evidence")
}
