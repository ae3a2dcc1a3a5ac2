package stats

import (
	"time"

	"traffic-insights/internal/models"
)

// BucketAggregator groups interval records into calendar-day or
// calendar-day-hour buckets and emits one BucketSummary per slot over the
// full observed range, gap-filled so the series is contiguous and suitable
// for plotting. The range is derived from the records themselves, never
// from the wall clock.
type BucketAggregator struct {
	granularity models.Granularity
}

func NewBucketAggregator(granularity models.Granularity) *BucketAggregator {
	return &BucketAggregator{granularity: granularity}
}

// bucketAccumulator holds the running sums and evidence samples for one
// time slot while records are being folded in.
type bucketAccumulator struct {
	vehicles  int64
	violators int64

	// Interval averages weighted by max(vehicleCount, 1). A zero-volume
	// interval with a speed still weighs 1; the reference behaves that way
	// and downstream numbers depend on it.
	speedWeightedSum float64
	speedWeight      int64
	speedSamples     []float64

	directP85s []float64
	peakSpeed  float64
}

// Aggregate folds records into buckets and resolves each bucket's p85 from
// the strongest available source:
//
//  1. the external percentile map's entry for the bucket's date,
//  2. the mean of the bucket's direct per-interval percentiles,
//  3. the nearest-rank p85 of the bucket's average-speed samples,
//  4. nil.
//
// Hourly buckets reuse their date's external entry since the device source
// has no finer resolution. Records with a zero timestamp are skipped.
// The returned slice is in chronological order.
func (a *BucketAggregator) Aggregate(records []models.IntervalRecord, external models.ExternalPercentileMap) []models.BucketSummary {
	byKey := make(map[string]*bucketAccumulator)

	for _, rec := range records {
		if rec.Timestamp.IsZero() {
			continue
		}
		key := a.granularity.Key(rec.Timestamp)
		acc, ok := byKey[key]
		if !ok {
			acc = &bucketAccumulator{}
			byKey[key] = acc
		}

		acc.vehicles += rec.VehicleCount
		acc.violators += rec.ViolatorCount

		if rec.AvgSpeed > 0 {
			weight := rec.VehicleCount
			if weight < 1 {
				weight = 1
			}
			acc.speedWeightedSum += rec.AvgSpeed * float64(weight)
			acc.speedWeight += weight
			acc.speedSamples = append(acc.speedSamples, rec.AvgSpeed)
		}
		if rec.PeakSpeed > acc.peakSpeed {
			acc.peakSpeed = rec.PeakSpeed
		}
		if rec.DirectP85 > 0 {
			acc.directP85s = append(acc.directP85s, rec.DirectP85)
		}
	}

	if len(byKey) == 0 {
		return nil
	}

	// Keys are zero-padded, so the lexicographic min/max bound the
	// observed range chronologically.
	var minKey, maxKey string
	for key := range byKey {
		if minKey == "" || key < minKey {
			minKey = key
		}
		if key > maxKey {
			maxKey = key
		}
	}

	start, err := a.granularity.ParseKey(minKey)
	if err != nil {
		return nil
	}
	end, err := a.granularity.ParseKey(maxKey)
	if err != nil {
		return nil
	}

	var summaries []models.BucketSummary
	for t := start; !t.After(end); t = a.granularity.Next(t) {
		key := a.granularity.Key(t)
		summaries = append(summaries, a.finalize(key, t, byKey[key], external))
	}
	return summaries
}

func (a *BucketAggregator) finalize(key string, t time.Time, acc *bucketAccumulator, external models.ExternalPercentileMap) models.BucketSummary {
	summary := models.BucketSummary{
		Key:   key,
		Label: a.granularity.Label(t),
	}
	if acc == nil {
		acc = &bucketAccumulator{}
	}

	summary.Vehicles = acc.vehicles
	summary.Violators = acc.violators
	summary.NonSpeeders = acc.vehicles - acc.violators

	if acc.vehicles > 0 {
		pct := float64(acc.violators) / float64(acc.vehicles) * 100
		summary.PctSpeeders = &pct
	}
	if acc.speedWeight > 0 {
		avg := acc.speedWeightedSum / float64(acc.speedWeight)
		summary.AvgSpeed = &avg
	}
	if acc.peakSpeed > 0 {
		peak := acc.peakSpeed
		summary.PeakSpeed = &peak
	}
	summary.P85 = a.resolveP85(key, acc, external)

	return summary
}

// resolveP85 applies the percentile-source priority; first available wins.
func (a *BucketAggregator) resolveP85(key string, acc *bucketAccumulator, external models.ExternalPercentileMap) *float64 {
	// Both key layouts start with the YYYY-MM-DD date.
	date := key
	if len(key) >= dailyDateLen {
		date = key[:dailyDateLen]
	}

	if entry, ok := external[date]; ok && entry.P85 > 0 {
		p85 := entry.P85
		return &p85
	}
	if len(acc.directP85s) > 0 {
		var sum float64
		for _, v := range acc.directP85s {
			sum += v
		}
		mean := sum / float64(len(acc.directP85s))
		return &mean
	}
	if len(acc.speedSamples) > 0 {
		p85 := PercentileFromSamples(acc.speedSamples, 0.85)
		return &p85
	}
	return nil
}

const dailyDateLen = len("2006-01-02")
