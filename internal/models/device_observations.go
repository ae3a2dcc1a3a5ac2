package models

// DevicePercentiles are percentile speeds computed by the measurement
// device itself from the full raw sample population for one calendar date.
type DevicePercentiles struct {
	P50 float64 `json:"p50"`
	P85 float64 `json:"p85"`
}

// ExternalPercentileMap maps an ISO date key (YYYY-MM-DD) to the device's
// authoritative percentiles for that date. When a date has an entry with a
// positive P85, that value outranks every engine-derived source for buckets
// on that date.
type ExternalPercentileMap map[string]DevicePercentiles

// DeviceObservations is the optional device-raw upload for a study:
// per-date firmware percentiles, and the true per-vehicle speed
// observations when the source device exports them.
type DeviceObservations struct {
	StudyID           string                `json:"studyId"`
	PercentilesByDate ExternalPercentileMap `json:"percentilesByDate,omitempty"`
	VehicleSpeeds     []float64             `json:"vehicleSpeeds,omitempty"`
}
