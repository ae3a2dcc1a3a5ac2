package aggregators

import (
	"fmt"

	"traffic-insights/internal/shared/svcerrors"
)

const (
	codeStudyInsightNotFound = "INS_1000"

	codeInternalRecordBatchStoreFailed        = "INS_9000"
	codeInternalDeviceObservationsStoreFailed = "INS_9001"
	codeInternalStudyInsightStoreFailed       = "INS_9002"
)

// errStudyInsightNotFound returns an error when no insight has been computed for a study.
func errStudyInsightNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeStudyInsightNotFound, "study insight not found", cause)
}

// errInternalRecordBatchStoreFailed returns an error when a record batch store operation fails.
func errInternalRecordBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordBatchStoreFailed, fmt.Errorf("recordBatchStoreFailed: %w", cause))
}

// errInternalDeviceObservationsStoreFailed returns an error when a device observations store operation fails.
func errInternalDeviceObservationsStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDeviceObservationsStoreFailed, fmt.Errorf("deviceObservationsStoreFailed: %w", cause))
}

// errInternalStudyInsightStoreFailed returns an error when a study insight store operation fails.
func errInternalStudyInsightStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStudyInsightStoreFailed, fmt.Errorf("studyInsightStoreFailed: %w", cause))
}
