package expiry

import "time"

var defaultLoc = time.UTC

// SetDefaultLocation sets the time location used for expiry comparisons
// (fallback UTC).
func SetDefaultLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc = loc
	}
}

// EndOfMonth returns the last instant of the given month in loc.
func EndOfMonth(year, month int, loc *time.Location) time.Time {
	if loc == nil {
		loc = defaultLoc
	}
	// First day of next month, then 1ns back
	firstNext := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond)
}

// Expired reports whether 'at' is strictly after the end of the given
// month. A card is good through the last instant of its expiry month.
func Expired(year, month int, at time.Time) bool {
	end := EndOfMonth(year, month, nil)
	return at.In(end.Location()).After(end)
}
