package service

import (
	"testing"
	"time"
)

func mustSet(pattern string) WeekdaySet { return ParseWeekdayPattern(pattern) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateSessionDates(t *testing.T) {
	monday := date(2026, 3, 2) // 2026-03-02 is a Monday

	t.Run("mon wed pattern, four sessions", func(t *testing.T) {
		got := GenerateSessionDates(monday, mustSet("2,4"), 4)
		want := []time.Time{
			date(2026, 3, 2), // Mon wk0
			date(2026, 3, 4), // Wed wk0
			date(2026, 3, 9), // Mon wk1
			date(2026, 3, 11), // Wed wk1
		}
		if len(got) != len(want) {
			t.Fatalf("got %d dates, want %d", len(got), len(want))
		}
		for i := range want {
			if !got[i].Equal(want[i]) {
				t.Errorf("dates[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("start date not on pattern is skipped", func(t *testing.T) {
		tuesday := date(2026, 3, 3)
		got := GenerateSessionDates(tuesday, mustSet("2"), 2)
		if len(got) != 2 || !got[0].Equal(date(2026, 3, 9)) || !got[1].Equal(date(2026, 3, 16)) {
			t.Errorf("got %v, want the next two Mondays", got)
		}
	})

	t.Run("empty weekday set yields nothing", func(t *testing.T) {
		if got := GenerateSessionDates(monday, mustSet(""), 5); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("zero count yields nothing", func(t *testing.T) {
		if got := GenerateSessionDates(monday, mustSet("2"), 0); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("count, weekday membership and ordering hold", func(t *testing.T) {
		set := mustSet("3,6,8")
		got := GenerateSessionDates(monday, set, 25)
		if len(got) != 25 {
			t.Fatalf("got %d dates, want 25", len(got))
		}
		for i, d := range got {
			if _, ok := set[d.Weekday()]; !ok {
				t.Errorf("dates[%d]=%v falls on %v, not in pattern", i, d, d.Weekday())
			}
			if i > 0 && !got[i-1].Before(d) {
				t.Errorf("dates[%d]=%v not after dates[%d]=%v", i, d, i-1, got[i-1])
			}
		}
	})

	t.Run("long weekly course is fully placed", func(t *testing.T) {
		got := GenerateSessionDates(monday, mustSet("2"), 150)
		if len(got) != 150 {
			t.Fatalf("got %d dates, want 150", len(got))
		}
		if want := monday.AddDate(0, 0, 149*7); !got[149].Equal(want) {
			t.Errorf("dates[149] = %v, want %v", got[149], want)
		}
		for i, d := range got {
			if d.Weekday() != time.Monday {
				t.Errorf("dates[%d]=%v is not a Monday", i, d)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := GenerateSessionDates(monday, mustSet("2,5"), 10)
		b := GenerateSessionDates(monday, mustSet("2,5"), 10)
		for i := range a {
			if !a[i].Equal(b[i]) {
				t.Fatalf("run differs at %d: %v vs %v", i, a[i], b[i])
			}
		}
	})
}

func TestComputeEndDate(t *testing.T) {
	monday := date(2026, 3, 2)

	t.Run("equals last generated date", func(t *testing.T) {
		dates := GenerateSessionDates(monday, mustSet("2,4"), 4)
		end := ComputeEndDate(monday, mustSet("2,4"), 4)
		if !end.Equal(dates[len(dates)-1]) {
			t.Errorf("end = %v, want %v", end, dates[len(dates)-1])
		}
		if !end.Equal(date(2026, 3, 11)) { // Wed wk1
			t.Errorf("end = %v, want 2026-03-11", end)
		}
	})

	t.Run("degenerate count falls back to start date", func(t *testing.T) {
		if end := ComputeEndDate(monday, mustSet("2"), 0); !end.Equal(monday) {
			t.Errorf("end = %v, want start date", end)
		}
	})
}
