package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalDays counts the calendar days covered by the inclusive [start, end]
// range, so a same-day rental counts as one day. Callers validate ordering
// before asking for a day count.
func RentalDays(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours()/24) + 1
}

// CarRentalPrice is totalDays × dailyPrice, decimal-exact.
func CarRentalPrice(totalDays int, dailyPrice decimal.Decimal) decimal.Decimal {
	return dailyPrice.Mul(decimal.NewFromInt(int64(totalDays)))
}

// TourPrice is numberOfPeople × pricePerPerson. No proration, no group
// discounts.
func TourPrice(numberOfPeople int, pricePerPerson decimal.Decimal) decimal.Decimal {
	return pricePerPerson.Mul(decimal.NewFromInt(int64(numberOfPeople)))
}

// dateOnly re-anchors a timestamp to UTC midnight of its calendar date so
// day arithmetic stays exact across time zones and DST.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
