// file: internals/features/academics/classes/service/schedule.go
package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

/* =========================
   Weekday pattern
   codes: 2=Mon .. 7=Sat, 8=Sun
========================= */

const (
	minWeekdayCode = 2
	maxWeekdayCode = 8
)

// WeekdaySet is an unordered set of weekdays a class recurs on.
type WeekdaySet map[time.Weekday]struct{}

// ParseWeekdayPattern parses a comma-separated list of weekday codes
// ("2,4,6" → Mon, Wed, Fri). Empty tokens and codes outside [2,8] are
// dropped silently; duplicates collapse. An all-garbage pattern simply
// yields an empty set, which callers reject before generation.
func ParseWeekdayPattern(pattern string) WeekdaySet {
	set := make(WeekdaySet)
	for _, tok := range strings.Split(pattern, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		code, err := strconv.Atoi(tok)
		if err != nil || code < minWeekdayCode || code > maxWeekdayCode {
			continue
		}
		set[codeToWeekday(code)] = struct{}{}
	}
	return set
}

// WeekdayPatternString renders the set back to the compact code form,
// codes ascending, so parse→print→parse round-trips.
func WeekdayPatternString(set WeekdaySet) string {
	codes := WeekdayCodes(set)
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, strconv.FormatInt(c, 10))
	}
	return strings.Join(parts, ",")
}

// WeekdayCodes returns the sorted code form used for the bigint[] column.
func WeekdayCodes(set WeekdaySet) []int64 {
	codes := make([]int64, 0, len(set))
	for wd := range set {
		codes = append(codes, weekdayToCode(wd))
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// WeekdaySetFromCodes rebuilds the set from the stored column, dropping
// out-of-range values the same way the string parser does.
func WeekdaySetFromCodes(codes pq.Int64Array) WeekdaySet {
	set := make(WeekdaySet)
	for _, c := range codes {
		if c < minWeekdayCode || c > maxWeekdayCode {
			continue
		}
		set[codeToWeekday(int(c))] = struct{}{}
	}
	return set
}

func codeToWeekday(code int) time.Weekday {
	if code == maxWeekdayCode {
		return time.Sunday
	}
	return time.Weekday(code - 1) // 2→Monday .. 7→Saturday
}

func weekdayToCode(wd time.Weekday) int64 {
	if wd == time.Sunday {
		return maxWeekdayCode
	}
	return int64(wd) + 1
}

/* =========================
   Time-of-day & time range
========================= */

// TimeOfDay is a clock time without a date ("19:45").
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// At anchors the clock time on a calendar day, keeping the day's location.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// ParseTimeRange parses "HH:MM-HH:MM" into start and end clock times.
// Start < end is deliberately not enforced here; the class DTO layer owns
// that check.
func ParseTimeRange(s string) (TimeOfDay, TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, TimeOfDay{}, fmt.Errorf("%w: time range %q needs a dash", ErrInvalidFormat, s)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}
	return start, end, nil
}

func parseClock(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: bad time %q", ErrInvalidFormat, s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}
