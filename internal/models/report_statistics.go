package models

// ReportStatistics is the scalar aggregate over one record window.
// Counts and rates default to 0 when there is no data; P85 is nil when no
// percentile source of any tier is available.
type ReportStatistics struct {
	TotalVehicles  int64    `json:"totalVehicles"`
	TotalViolators int64    `json:"totalViolators"`
	ViolationRate  float64  `json:"violationRate"` // percentage, 0 without vehicles
	AvgSpeed       float64  `json:"avgSpeed"`      // vehicle-weighted mean, 0 without speed evidence
	PeakSpeed      float64  `json:"peakSpeed"`     // 0 when never observed
	P85            *float64 `json:"p85"`
}
