package aggregator

import (
	"math"

	"review-insights-go/internal/types"
)

// TotalHours sums category watch time and converts minutes to hours.
func TotalHours(durations []types.CategoryDuration) float64 {
	var mins float64
	for _, d := range durations {
		mins += d.WatchMinutes
	}
	return mins / 60
}

// Ratio returns num/den, or nil when the result would not be finite.
func Ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil
	}
	return &r
}

// HoursPerDay is nil when there are no active days.
func HoursPerDay(totalHours float64, activeDays int) *float64 {
	return Ratio(totalHours, float64(activeDays))
}

// TopCategoryShare divides the favorite category's minutes by total hours.
func TopCategoryShare(top types.CategoryDuration, totalHours float64) *float64 {
	return Ratio(top.WatchMinutes, totalHours)
}
