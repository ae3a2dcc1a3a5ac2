package models

import "time"

// IntervalRecord is one sensor-reported measurement window: vehicle and
// violator counts plus a speed summary for the interval.
//
// AvgSpeed, PeakSpeed and DirectP85 use zero to mean "not recorded". The
// deployed sensors never report a legitimate zero for any of them, and the
// surrounding reporting tool renders the missing case ("N/A") rather than
// "0 mph", so the conflation is part of the contract.
//
// DirectP85 is an 85th-percentile speed already computed upstream (sensor
// firmware or prior processing) for this specific interval. It is stronger
// evidence than anything derived from interval averages.
type IntervalRecord struct {
	Timestamp     time.Time `json:"timestamp"`
	VehicleCount  int64     `json:"vehicleCount"`
	ViolatorCount int64     `json:"violatorCount"`
	AvgSpeed      float64   `json:"avgSpeed,omitempty"`
	PeakSpeed     float64   `json:"peakSpeed,omitempty"`
	DirectP85     float64   `json:"p85,omitempty"`
}
