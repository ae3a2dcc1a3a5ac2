package models

import (
	"fmt"
	"time"
)

// Granularity is the time-bucket resolution for a bucketed series.
type Granularity string

const (
	GranularityDaily  Granularity = "daily"
	GranularityHourly Granularity = "hourly"
)

const (
	dailyKeyLayout  = "2006-01-02"
	hourlyKeyLayout = "2006-01-02-15"
)

// Key returns the grouping key for t at this granularity. Keys are
// zero-padded so lexicographic order is chronological order.
func (g Granularity) Key(t time.Time) string {
	utc := t.UTC()

	switch g {
	case GranularityDaily:
		return utc.Format(dailyKeyLayout)
	case GranularityHourly:
		return utc.Format(hourlyKeyLayout)
	}
	return ""
}

// ParseKey is the inverse of Key.
func (g Granularity) ParseKey(key string) (time.Time, error) {
	switch g {
	case GranularityDaily:
		return time.ParseInLocation(dailyKeyLayout, key, time.UTC)
	case GranularityHourly:
		return time.ParseInLocation(hourlyKeyLayout, key, time.UTC)
	}
	return time.Time{}, fmt.Errorf("invalid Granularity: %q", g)
}

// Next returns the start of the bucket following the one containing t.
func (g Granularity) Next(t time.Time) time.Time {
	switch g {
	case GranularityDaily:
		return t.AddDate(0, 0, 1)
	case GranularityHourly:
		return t.Add(time.Hour)
	}
	panic(fmt.Sprintf("invalid Granularity: %q", g))
}

// Label returns the display string for the bucket containing t.
func (g Granularity) Label(t time.Time) string {
	utc := t.UTC()

	switch g {
	case GranularityDaily:
		return utc.Format("2006-01-02")
	case GranularityHourly:
		return utc.Format("2006-01-02 15:00")
	}
	return ""
}
