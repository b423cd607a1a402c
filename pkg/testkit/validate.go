package testkit

import (
	"math"
	"time"
)

// isoDateLayouts are the accepted ISO-8601 shapes, from most to least
// specific.
var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// IsValidDateString reports whether s parses as an ISO-8601 date or
// timestamp.
func IsValidDateString(s string) bool {
	for _, layout := range isoDateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// IsInRange reports whether min <= value <= max.
func IsInRange(value, min, max float64) bool {
	return min <= value && value <= max
}

// IsValidConfidence reports whether c is a valid confidence indicator,
// i.e. inside [0.0, 1.0] inclusive.
func IsValidConfidence(c float64) bool {
	return IsInRange(c, 0.0, 1.0)
}

// IsValidForecastHorizon reports whether the horizon is within the supported
// 7-14 day window.
func IsValidForecastHorizon(horizon int) bool {
	return IsInRange(float64(horizon), 7, 14)
}

// HasRequiredFields reports whether every named field is present and non-nil
// in obj.
func HasRequiredFields(obj map[string]interface{}, fields []string) bool {
	for _, field := range fields {
		v, ok := obj[field]
		if !ok || v == nil {
			return false
		}
	}
	return true
}

// PercentageDifference returns the percentage change from baseline to
// comparison. A zero baseline yields 0 when the comparison is also zero and
// +Inf otherwise.
func PercentageDifference(baseline, comparison float64) float64 {
	if baseline == 0 {
		if comparison == 0 {
			return 0.0
		}
		return math.Inf(1)
	}
	return (comparison - baseline) / baseline * 100
}

// IsInFestivalPeriod reports whether date falls inside the festival window
// [festivalDate, festivalDate+duration days], boundaries included.
func IsInFestivalPeriod(date, festivalDate time.Time, duration int) bool {
	end := festivalDate.AddDate(0, 0, duration)
	return !date.Before(festivalDate) && !date.After(end)
}

// DateRange returns consecutive ISO date strings starting at start.
func DateRange(start time.Time, days int) []string {
	dates := make([]string, days)
	for i := 0; i < days; i++ {
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	return dates
}
