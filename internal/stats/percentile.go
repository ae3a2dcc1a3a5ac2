// Package stats is the aggregation and percentile-estimation core. Every
// function is a pure computation over an already-materialized record
// collection: no I/O, no clock, no package-level state. Callers are
// responsible for filtering out records with unparseable timestamps before
// the records reach this package.
package stats

import (
	"math"
	"sort"

	"traffic-insights/internal/models"
)

// PercentileFromSamples returns the nearest-rank percentile of values.
// p is a fraction (0.85 for the 85th percentile). The input slice is not
// modified. Empty input returns 0.
//
// The rank formula is ceil(p*n)-1 clamped to [0, n-1]; other components
// depend on matching these exact results, so it must not be swapped for a
// linearly interpolated method.
func PercentileFromSamples(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}

	return sorted[idx]
}

// PercentileFromBins estimates a percentile by linear interpolation inside
// a pre-binned histogram. counts[i] is the sample count for bins[i]. The
// open-ended final bin interpolates over an assumed width of 5. Zero total
// returns 0.
func PercentileFromBins(counts []int64, bins []models.SpeedBin, p float64) float64 {
	var total int64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}

	target := float64(total) * p

	var cumulative float64
	for i, bin := range bins {
		if i >= len(counts) {
			break
		}
		cumulative += float64(counts[i])
		if cumulative < target {
			continue
		}

		positionInBin := target - (cumulative - float64(counts[i]))
		fraction := 0.0
		if counts[i] > 0 {
			fraction = positionInBin / float64(counts[i])
		}
		return math.Round(bin.Min + fraction*bin.InterpolationWidth())
	}

	// Unreachable for valid counts; keep the reference fallback anyway.
	return bins[len(bins)-1].Min + 2
}
