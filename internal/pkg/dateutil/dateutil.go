// Package dateutil implements the calendar-month arithmetic the permit
// billing model is built on. Permits are billed in whole calendar months
// anchored to the permit's start day-of-month, so every helper here
// clamps day numbers to the length of the target month (day 31 in
// February becomes February 28/29).
package dateutil

import "time"

// DateOf truncates a timestamp to midnight of the same calendar day,
// keeping its location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths adds n calendar months to t, clamping the day-of-month to
// the length of the target month. This differs from time.AddDate, which
// normalizes Jan 31 + 1 month into March 2/3.
func AddMonths(t time.Time, n int) time.Time {
	months := int(t.Month()) - 1 + n
	yearDelta := months / 12
	monthIndex := months % 12
	if monthIndex < 0 {
		monthIndex += 12
		yearDelta--
	}
	year := t.Year() + yearDelta
	month := time.Month(monthIndex + 1)
	day := t.Day()
	if max := DaysInMonth(year, month); day > max {
		day = max
	}
	return time.Date(year, month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DiffMonthsFloor returns the number of whole calendar months between
// start and end, or 0 if start is after end.
func DiffMonthsFloor(start, end time.Time) int {
	if start.After(end) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if AddMonths(start, months).After(end) {
		months--
	}
	return months
}

// DiffMonthsCeil returns the month count between start and end with any
// partial month counting as one full month, or 0 if start is after end.
// A zero-length remainder still rounds up: the span from a date to the
// same date one month later is two months.
func DiffMonthsCeil(start, end time.Time) int {
	if start.After(end) {
		return 0
	}
	return DiffMonthsFloor(start, end) + 1
}

// FindNextDate finds the next date with the given day number on or after
// dt. If the month is too short the day is clamped to the month's last
// day, and if the clamped date falls before dt the search rolls into the
// next month.
func FindNextDate(dt time.Time, day int) time.Time {
	if max := DaysInMonth(dt.Year(), dt.Month()); day > max {
		day = max
	}
	found := time.Date(dt.Year(), dt.Month(), day, 0, 0, 0, 0, dt.Location())
	if found.Before(DateOf(dt)) {
		found = AddMonths(found, 1)
	}
	return found
}

// PeriodEndTime returns the inclusive end timestamp of a billing period
// of the given number of months: start + months - 1 day, at the very end
// of that day.
func PeriodEndTime(start time.Time, months int) time.Time {
	end := AddMonths(start, months).AddDate(0, 0, -1)
	return time.Date(end.Year(), end.Month(), end.Day(),
		23, 59, 59, 999999000, end.Location())
}

// EndOfDay returns the last representable instant of t's calendar day,
// matching the precision PeriodEndTime uses for period ends.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		23, 59, 59, 999999000, t.Location())
}

// MaxTime returns the later of two timestamps.
func MaxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// MinTime returns the earlier of two timestamps.
func MinTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
