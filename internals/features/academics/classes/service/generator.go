// file: internals/features/academics/classes/service/generator.go
package service

import "time"

// scanHorizonDays bounds the forward scan. A non-empty weekday set matches
// at least once every 7 days, so count weeks plus one spare always hold
// count sessions.
func scanHorizonDays(count int) int {
	return count*7 + 7
}

// GenerateSessionDates walks forward from startDate (inclusive when its
// weekday matches) collecting every date whose weekday is in the set, until
// count dates are found. Pure calendar arithmetic: same input, same output,
// no timezone games. Empty set or count <= 0 yields nil.
func GenerateSessionDates(startDate time.Time, weekdays WeekdaySet, count int) []time.Time {
	if count <= 0 || len(weekdays) == 0 {
		return nil
	}

	day := DateOf(startDate)
	dates := make([]time.Time, 0, count)
	for scanned := 0; len(dates) < count && scanned < scanHorizonDays(count); scanned++ {
		if _, ok := weekdays[day.Weekday()]; ok {
			dates = append(dates, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// ComputeEndDate is the date of the last generated session. Degenerate
// inputs (count <= 0, empty set) fall back to the start date; the
// materializer rejects those before they reach persistence.
func ComputeEndDate(startDate time.Time, weekdays WeekdaySet, count int) time.Time {
	dates := GenerateSessionDates(startDate, weekdays, count)
	if len(dates) == 0 {
		return DateOf(startDate)
	}
	return dates[len(dates)-1]
}

// DateOf strips the clock part, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
