package events

// StudyUpdatedEvent signals that a study's inputs changed and its insight
// must be recomputed from the full stored record set. BatchID is set when
// the trigger was a record-batch ingestion and empty when it was a
// device-observations upload.
//
// Events for the same study are routed to the same queue partition, so one
// consumer worker sees all of a study's updates in order and insight
// rebuilds for a study never run concurrently.
type StudyUpdatedEvent struct {
	StudyID string `json:"studyId"`
	BatchID string `json:"batchId,omitempty"`
}
