package booking

import "time"

// Slots are minute-granularity UTC instants. Two bookings occupy the
// same slot iff their normalized dates are equal.

func NormalizeSlot(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}

func FormatSlot(t time.Time) string {
	return t.UTC().Format("15:04")
}

// DayWindowUTC returns the inclusive [00:00:00.000, 23:59:59.999] UTC
// bounds of the calendar day containing d.
func DayWindowUTC(d time.Time) (time.Time, time.Time) {
	d = d.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, time.UTC)
	return start, end
}
