package stats

import "traffic-insights/internal/models"

// Summarize computes the scalar statistics for an arbitrary record window.
// The records are consumed as-is, not pre-bucketed.
//
// The p85 is resolved from the broadest-scope evidence available:
//
//  1. true per-vehicle speed observations (vehicleSpeeds), filtered to
//     positive values, via nearest-rank;
//  2. the mean of the external map's per-date p85 values, skipping
//     zero/missing entries;
//  3. the mean of the records' direct per-interval percentiles;
//  4. nearest-rank over the records' interval average speeds;
//  5. nil when no tier has evidence.
func Summarize(records []models.IntervalRecord, vehicleSpeeds []float64, external models.ExternalPercentileMap) models.ReportStatistics {
	var result models.ReportStatistics

	var (
		speedWeightedSum float64
		speedWeight      int64
		speedSamples     []float64
		directP85s       []float64
	)

	for _, rec := range records {
		result.TotalVehicles += rec.VehicleCount
		result.TotalViolators += rec.ViolatorCount

		if rec.AvgSpeed > 0 {
			weight := rec.VehicleCount
			if weight < 1 {
				weight = 1
			}
			speedWeightedSum += rec.AvgSpeed * float64(weight)
			speedWeight += weight
			speedSamples = append(speedSamples, rec.AvgSpeed)
		}
		if rec.PeakSpeed > result.PeakSpeed {
			result.PeakSpeed = rec.PeakSpeed
		}
		if rec.DirectP85 > 0 {
			directP85s = append(directP85s, rec.DirectP85)
		}
	}

	if result.TotalVehicles > 0 {
		result.ViolationRate = float64(result.TotalViolators) / float64(result.TotalVehicles) * 100
	}
	if speedWeight > 0 {
		result.AvgSpeed = speedWeightedSum / float64(speedWeight)
	}
	result.P85 = resolveReportP85(vehicleSpeeds, external, directP85s, speedSamples)

	return result
}

func resolveReportP85(vehicleSpeeds []float64, external models.ExternalPercentileMap, directP85s, speedSamples []float64) *float64 {
	var positives []float64
	for _, speed := range vehicleSpeeds {
		if speed > 0 {
			positives = append(positives, speed)
		}
	}
	if len(positives) > 0 {
		p85 := PercentileFromSamples(positives, 0.85)
		return &p85
	}

	if len(external) > 0 {
		var sum float64
		var n int
		for _, entry := range external {
			if entry.P85 > 0 {
				sum += entry.P85
				n++
			}
		}
		if n > 0 {
			mean := sum / float64(n)
			return &mean
		}
	}

	if len(directP85s) > 0 {
		var sum float64
		for _, v := range directP85s {
			sum += v
		}
		mean := sum / float64(len(directP85s))
		return &mean
	}

	if len(speedSamples) > 0 {
		p85 := PercentileFromSamples(speedSamples, 0.85)
		return &p85
	}
	return nil
}
