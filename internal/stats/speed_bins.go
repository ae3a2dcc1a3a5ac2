package stats

import "traffic-insights/internal/models"

// Classify returns the index of the bin speed belongs to, or -1 when speed
// matches no bin. Bins are checked in order and the first match wins; the
// final bin additionally catches any speed at or above its Min regardless of
// Max. Sub-minimum speeds are out of range for the device and are
// intentionally not counted anywhere. The twelve-bin table has one-unit gaps
// between consecutive bins (e.g. [56,60) then [61,∞)), so non-integer speeds
// inside a gap also return -1; devices reporting that table emit integer
// speeds only.
func Classify(speed float64, bins []models.SpeedBin) int {
	for i, bin := range bins {
		if i == len(bins)-1 {
			if speed >= bin.Min {
				return i
			}
			break
		}
		if speed >= bin.Min && speed < bin.Max {
			return i
		}
	}
	return -1
}

// BinCounts builds histogram counts from interval average speeds. Each
// interval's average speed contributes max(vehicleCount, 1) to its bin, the
// same weight rule the weighted averages use, so the histogram approximates
// a per-vehicle distribution.
func BinCounts(records []models.IntervalRecord, bins []models.SpeedBin) []int64 {
	counts := make([]int64, len(bins))
	for _, rec := range records {
		if rec.AvgSpeed <= 0 {
			continue
		}
		idx := Classify(rec.AvgSpeed, bins)
		if idx < 0 {
			continue
		}
		weight := rec.VehicleCount
		if weight < 1 {
			weight = 1
		}
		counts[idx] += weight
	}
	return counts
}

// BinCountsFromSpeeds builds histogram counts from true per-vehicle speed
// observations, one count per observation. Non-positive speeds are skipped.
func BinCountsFromSpeeds(speeds []float64, bins []models.SpeedBin) []int64 {
	counts := make([]int64, len(bins))
	for _, speed := range speeds {
		if speed <= 0 {
			continue
		}
		if idx := Classify(speed, bins); idx >= 0 {
			counts[idx]++
		}
	}
	return counts
}
