package utils

import (
	"math"
	"time"
)

// RentalDays returns the number of billable days between start and end.
// Any started day counts in full; a same-day rental bills one day.
func RentalDays(start, end time.Time) int {
	if !end.After(start) {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice returns the rental total for a per-day rate.
func TotalPrice(pricePerDay float64, start, end time.Time) float64 {
	return pricePerDay * float64(RentalDays(start, end))
}
