package models

// RecordBatch is one ingested upload of interval records for a study.
// Batches are immutable once stored; a study's full record set is the
// concatenation of all its batches.
type RecordBatch struct {
	BatchID string           `json:"batchId"`
	StudyID string           `json:"studyId"`
	Records []IntervalRecord `json:"records"`
}
