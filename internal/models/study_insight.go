package models

// SpeedHistogram is the study's speed distribution over one canonical bin
// table, with a percentile estimate interpolated from the binned counts.
type SpeedHistogram struct {
	Scheme    BinScheme  `json:"scheme"`
	Bins      []SpeedBin `json:"bins"`
	Counts    []int64    `json:"counts"`
	BinnedP85 float64    `json:"binnedP85"`
}

// StudyInsight is the complete computed summary for one study: scalar
// report statistics, the gap-filled daily and hourly bucket series, the
// 24-slot hour-of-day profile, and the speed histogram. It is recomputed
// from the study's full record set whenever the study changes, so two
// rebuilds over the same inputs produce identical results.
type StudyInsight struct {
	StudyID        string           `json:"studyId"`
	Report         ReportStatistics `json:"report"`
	DailyBuckets   []BucketSummary  `json:"dailyBuckets"`
	HourlyBuckets  []BucketSummary  `json:"hourlyBuckets"`
	HourOfDay      []HourOfDaySlot  `json:"hourOfDay"`
	SpeedHistogram SpeedHistogram   `json:"speedHistogram"`
}
