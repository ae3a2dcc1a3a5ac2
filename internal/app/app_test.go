package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"traffic-insights/internal/app"
	"traffic-insights/internal/models"
	"traffic-insights/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := &configs.Config{
		Server: configs.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5,
			ReadTimeout:       15,
			WriteTimeout:      15,
			IdleTimeout:       60,
		},
		Log:         configs.LogConfig{Level: "error"},
		FileStorage: configs.FileStorageConfig{RootDir: t.TempDir()},
		Aggregation: configs.AggregationConfig{BinScheme: "eight"},
	}

	application, err := app.New(cfg)
	require.NoError(t, err)

	application.StartConsumers()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = application.Shutdown(ctx)
	})

	return application
}

func doRequest(t *testing.T, application *app.App, method, target string, headers map[string]string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rr := httptest.NewRecorder()
	application.Handler().ServeHTTP(rr, req)
	return rr
}

func getInsight(t *testing.T, application *app.App, studyID string) (*models.StudyInsight, int) {
	t.Helper()

	rr := doRequest(t, application, http.MethodGet, "/studies/"+studyID+"/insight", nil, nil)
	if rr.Code != http.StatusOK {
		return nil, rr.Code
	}
	var insight models.StudyInsight
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &insight))
	return &insight, rr.Code
}

func TestApp_IngestThenInsight(t *testing.T) {
	t.Parallel()

	application := newTestApp(t)

	batch := `[
		{"timestamp":"2025-06-02T08:00:00Z","vehicleCount":10,"violatorCount":2,"avgSpeed":30.0,"peakSpeed":45.0},
		{"timestamp":"2025-06-02T09:00:00Z","vehicleCount":30,"violatorCount":6,"avgSpeed":35.0,"peakSpeed":50.0}
	]`
	headers := map[string]string{
		"content-type":    "application/json",
		"idempotency-key": "batch-000001",
	}

	rr := doRequest(t, application, http.MethodPost, "/studies/study-e2e/records", headers, []byte(batch))
	require.Equal(t, http.StatusAccepted, rr.Code, "body: %s", rr.Body.String())

	var insight *models.StudyInsight
	require.Eventually(t, func() bool {
		got, code := getInsight(t, application, "study-e2e")
		if code != http.StatusOK {
			return false
		}
		insight = got
		return true
	}, 5*time.Second, 20*time.Millisecond, "insight should become available after async rebuild")

	assert.Equal(t, "study-e2e", insight.StudyID)
	assert.Equal(t, int64(40), insight.Report.TotalVehicles)
	assert.Equal(t, int64(8), insight.Report.TotalViolators)
	assert.InDelta(t, 20.0, insight.Report.ViolationRate, 1e-9)
	assert.InDelta(t, 33.75, insight.Report.AvgSpeed, 1e-9, "vehicle-weighted mean")
	assert.InDelta(t, 50.0, insight.Report.PeakSpeed, 1e-9)
	require.NotNil(t, insight.Report.P85, "derived from interval avg speeds")
	assert.InDelta(t, 35.0, *insight.Report.P85, 1e-9)

	require.Len(t, insight.DailyBuckets, 1)
	daily := insight.DailyBuckets[0]
	assert.Equal(t, "2025-06-02", daily.Key)
	assert.Equal(t, int64(40), daily.Vehicles)
	assert.Equal(t, int64(8), daily.Violators)
	assert.Equal(t, int64(32), daily.NonSpeeders)

	require.Len(t, insight.HourlyBuckets, 2)
	assert.Equal(t, "2025-06-02-08", insight.HourlyBuckets[0].Key)
	assert.Equal(t, "2025-06-02-09", insight.HourlyBuckets[1].Key)

	require.Len(t, insight.HourOfDay, 24)
	assert.Equal(t, int64(10), insight.HourOfDay[8].Vehicles)
	assert.Equal(t, int64(30), insight.HourOfDay[9].Vehicles)

	require.Len(t, insight.SpeedHistogram.Counts, 8)
	var total int64
	for _, count := range insight.SpeedHistogram.Counts {
		total += count
	}
	assert.Equal(t, int64(40), total, "histogram weighted by vehicle counts")
}

func TestApp_DuplicateBatchConflicts(t *testing.T) {
	t.Parallel()

	application := newTestApp(t)

	batch := `[{"timestamp":"2025-06-02T08:00:00Z","vehicleCount":5,"violatorCount":1,"avgSpeed":28.0}]`
	headers := map[string]string{
		"content-type":    "application/json",
		"idempotency-key": "batch-dup",
	}

	rr := doRequest(t, application, http.MethodPost, "/studies/study-dup/records", headers, []byte(batch))
	require.Equal(t, http.StatusAccepted, rr.Code)

	rr = doRequest(t, application, http.MethodPost, "/studies/study-dup/records", headers, []byte(batch))
	require.Equal(t, http.StatusConflict, rr.Code)

	var errorResponse struct {
		ErrorCode     string `json:"errorCode"`
		ErrorCategory string `json:"errorCategory"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "REC_1001", errorResponse.ErrorCode)
	assert.Equal(t, "resource_conflict", errorResponse.ErrorCategory)
}

func TestApp_DeviceObservationsOverrideP85(t *testing.T) {
	t.Parallel()

	application := newTestApp(t)

	batch := `[{"timestamp":"2025-06-02T08:00:00Z","vehicleCount":10,"violatorCount":0,"avgSpeed":30.0}]`
	headers := map[string]string{
		"content-type":    "application/json",
		"idempotency-key": "batch-000001",
	}
	rr := doRequest(t, application, http.MethodPost, "/studies/study-dev/records", headers, []byte(batch))
	require.Equal(t, http.StatusAccepted, rr.Code)

	require.Eventually(t, func() bool {
		_, code := getInsight(t, application, "study-dev")
		return code == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	observations := `{"percentilesByDate":{"2025-06-02":{"p50":28.0,"p85":42.0}}}`
	rr = doRequest(t, application, http.MethodPut, "/studies/study-dev/device-observations", nil, []byte(observations))
	require.Equal(t, http.StatusNoContent, rr.Code, "body: %s", rr.Body.String())

	require.Eventually(t, func() bool {
		insight, code := getInsight(t, application, "study-dev")
		if code != http.StatusOK || insight.Report.P85 == nil {
			return false
		}
		return *insight.Report.P85 == 42.0
	}, 5*time.Second, 20*time.Millisecond, "external percentiles should take precedence over derived p85")
}

func TestApp_InsightNotFound(t *testing.T) {
	t.Parallel()

	application := newTestApp(t)

	rr := doRequest(t, application, http.MethodGet, "/studies/no-such-study/insight", nil, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	var errorResponse struct {
		ErrorCode string `json:"errorCode"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "INS_1000", errorResponse.ErrorCode)
}
