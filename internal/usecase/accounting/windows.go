package accounting

import "time"

// DayWindow bounds the calendar day containing now, in now's location.
func DayWindow(now time.Time) (time.Time, time.Time) {
	loc := now.Location()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999_000_000, loc)
	return start, end
}

// WeekStart returns the most recent Monday 00:00:00 relative to now,
// treating Sunday as day seven of the previous week.
func WeekStart(now time.Time) time.Time {
	day := int(now.Weekday())
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	monday := now.AddDate(0, 0, diff)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
}

// MonthStart returns the first calendar day of now's month, 00:00:00.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
