package util

import "time"

// DayBounds returns the half-open interval [midnight, next midnight) containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// WeekBounds returns the half-open Monday-to-Monday interval containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	dayStart, _ := DayBounds(t)

	offset := int(dayStart.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	start := dayStart.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// WholeMinutes truncates the interval to whole minutes, never negative.
func WholeMinutes(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}

// Overlaps reports whether [aStart, aEnd) intersects [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
