package core

import "time"

// DateLayout is the rendering used for dates in range descriptions.
const DateLayout = "01/02/2006"

// ToDate truncates t to its calendar date. The result is midnight UTC on
// the wall-clock date of t, so dates compare equal regardless of the
// location they were built in.
func ToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b.
// Both arguments are expected to be dates from ToDate. Unix seconds are
// used because time.Duration cannot span more than about 292 years.
func DaysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
