package report

import "time"

// Granularity selects the bucket width of a time series.
type Granularity string

// List of supported time-series granularities
const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

var allowedGranularities = [...]Granularity{
	GranularityDaily, GranularityWeekly, GranularityMonthly,
}

// Valid checks if the Granularity is valid
func (g Granularity) Valid() bool {
	for _, v := range allowedGranularities {
		if g == v {
			return true
		}
	}
	return false
}

// BucketStart truncates t (in UTC) to the bucket boundary for the
// granularity: midnight of the day, Monday of the ISO week, or the first
// of the calendar month. Boundaries depend on the calendar only, so two
// stores covering the same window produce aligned buckets.
func (g Granularity) BucketStart(t time.Time) time.Time {
	t = t.UTC()
	switch g {
	case GranularityWeekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		back := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -back)
	case GranularityMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}
