package ingestors

import "traffic-insights/internal/shared/svcerrors"

const (
	codeValidationFailed            = "REC_1000"
	codeRecordBatchAlreadyProcessed = "REC_1001"

	codeInternalRecordBatchStoreFailed        = "REC_9000"
	codeInternalStudyEventPublishFailed       = "REC_9001"
	codeInternalDeviceObservationsStoreFailed = "REC_9002"
)

func errValidationFailed(message string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, message, cause)
}

func errRecordBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeRecordBatchAlreadyProcessed, "record batch has already been processed", cause)
}

func errInternalRecordBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRecordBatchStoreFailed, cause)
}

func errInternalStudyEventPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStudyEventPublishFailed, cause)
}

func errInternalDeviceObservationsStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDeviceObservationsStoreFailed, cause)
}
