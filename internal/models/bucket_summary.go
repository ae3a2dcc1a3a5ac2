package models

// BucketSummary is the aggregate for one time slot of a bucketed series.
// The series a BucketAggregator produces is contiguous: slots with no
// records still appear, with zero counts and nil optional fields.
//
// Optional fields are pointers; nil means "no data" and must be rendered
// as such (e.g. "N/A"), never coerced to 0.
type BucketSummary struct {
	Key         string   `json:"key"`   // YYYY-MM-DD or YYYY-MM-DD-HH
	Label       string   `json:"label"` // display string
	Vehicles    int64    `json:"vehicles"`
	Violators   int64    `json:"violators"`
	NonSpeeders int64    `json:"nonSpeeders"`
	PctSpeeders *float64 `json:"pctSpeeders"` // nil when Vehicles == 0
	AvgSpeed    *float64 `json:"avgSpeed"`    // vehicle-weighted mean, nil without speed evidence
	PeakSpeed   *float64 `json:"peakSpeed"`   // nil when never observed above 0
	P85         *float64 `json:"p85"`         // nil when no percentile source available
}

// HourOfDaySlot is one of the 24 date-independent hour slots of a daily
// traffic pattern. No percentile is produced at this granularity.
type HourOfDaySlot struct {
	Hour      int      `json:"hour"` // 0-23
	Vehicles  int64    `json:"vehicles"`
	Violators int64    `json:"violators"`
	AvgSpeed  *float64 `json:"avgSpeed"` // vehicle-weighted mean, nil without speed evidence
}
