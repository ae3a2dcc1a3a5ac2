package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	aggregatormocks "traffic-insights/internal/aggregators/mocks"
	"traffic-insights/internal/models"
	"traffic-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStudyInsightHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsightService := aggregatormocks.NewMockInsightService(ctrl)
	handler := NewStudyInsightHandler(mockInsightService)

	req := newRequestWithStudyID(http.MethodGet, "/studies/study123/insight", "study123", nil)
	rr := httptest.NewRecorder()

	insight := &models.StudyInsight{
		StudyID: "study123",
		Report: models.ReportStatistics{
			TotalVehicles:  100,
			TotalViolators: 20,
			ViolationRate:  20.0,
		},
	}
	mockInsightService.EXPECT().
		GetInsight(gomock.Any(), "study123").
		Return(insight, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.StudyInsight
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "study123", got.StudyID)
	assert.Equal(t, int64(100), got.Report.TotalVehicles)
}

func TestStudyInsightHandler_Handle_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsightService := aggregatormocks.NewMockInsightService(ctrl)
	handler := NewStudyInsightHandler(mockInsightService)

	req := newRequestWithStudyID(http.MethodGet, "/studies/study123/insight", "study123", nil)
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewNotFoundError("INS_1000", "study insight not found", nil)
	mockInsightService.EXPECT().
		GetInsight(gomock.Any(), "study123").
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "INS_1000", svcErr.Code)
	assert.Equal(t, 404, svcErr.HttpStatusCode)
}
