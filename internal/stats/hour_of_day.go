package stats

import "traffic-insights/internal/models"

// HourOfDayProfile folds records into 24 fixed hour-of-day slots, ignoring
// the calendar date, for daily-pattern summaries. The result always has
// exactly 24 slots in hour order; hours with no records keep zero counts
// and a nil average speed. Records with a zero timestamp are skipped.
func HourOfDayProfile(records []models.IntervalRecord) []models.HourOfDaySlot {
	type slotAccumulator struct {
		vehicles         int64
		violators        int64
		speedWeightedSum float64
		speedWeight      int64
	}
	var slots [24]slotAccumulator

	for _, rec := range records {
		if rec.Timestamp.IsZero() {
			continue
		}
		hour := rec.Timestamp.UTC().Hour()
		acc := &slots[hour]

		acc.vehicles += rec.VehicleCount
		acc.violators += rec.ViolatorCount
		if rec.AvgSpeed > 0 {
			weight := rec.VehicleCount
			if weight < 1 {
				weight = 1
			}
			acc.speedWeightedSum += rec.AvgSpeed * float64(weight)
			acc.speedWeight += weight
		}
	}

	profile := make([]models.HourOfDaySlot, 24)
	for hour, acc := range slots {
		slot := models.HourOfDaySlot{
			Hour:      hour,
			Vehicles:  acc.vehicles,
			Violators: acc.violators,
		}
		if acc.speedWeight > 0 {
			avg := acc.speedWeightedSum / float64(acc.speedWeight)
			slot.AvgSpeed = &avg
		}
		profile[hour] = slot
	}
	return profile
}
