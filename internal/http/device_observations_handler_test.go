package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	ingestormocks "traffic-insights/internal/ingestors/mocks"
	"traffic-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDeviceObservationsHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewDeviceObservationsHandler(mockIngestionService)

	body := []byte(`{"vehicleSpeeds":[31.5]}`)
	req := newRequestWithStudyID(http.MethodPut, "/studies/study123/device-observations", "study123", body)
	rr := httptest.NewRecorder()

	mockIngestionService.EXPECT().
		PutDeviceObservations(gomock.Any(), "study123", gomock.Any()).
		Return(nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.Bytes())
}

func TestDeviceObservationsHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewDeviceObservationsHandler(mockIngestionService)

	req := newRequestWithStudyID(http.MethodPut, "/studies/study123/device-observations", "study123", []byte(`{}`))
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("TEST_1000", "validation failed", nil)
	mockIngestionService.EXPECT().
		PutDeviceObservations(gomock.Any(), "study123", gomock.Any()).
		Return(expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TEST_1000", svcErr.Code)
}
