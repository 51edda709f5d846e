package service

import (
	"errors"
	"testing"
	"time"
)

func TestParseWeekdayPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []time.Weekday
	}{
		{name: "mon wed fri", pattern: "2,4,6", want: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{name: "sunday code 8", pattern: "8", want: []time.Weekday{time.Sunday}},
		{name: "all days", pattern: "2,3,4,5,6,7,8", want: []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}},
		{name: "duplicates collapse", pattern: "2,2,2", want: []time.Weekday{time.Monday}},
		{name: "whitespace tokens ignored", pattern: " 2 , , 4 ", want: []time.Weekday{time.Monday, time.Wednesday}},
		{name: "out of range dropped", pattern: "1,2,9", want: []time.Weekday{time.Monday}},
		{name: "garbage dropped", pattern: "abc,4", want: []time.Weekday{time.Wednesday}},
		{name: "empty", pattern: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWeekdayPattern(tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdayPattern(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for _, wd := range tt.want {
				if _, ok := got[wd]; !ok {
					t.Errorf("ParseWeekdayPattern(%q) missing %v", tt.pattern, wd)
				}
			}
		})
	}
}

func TestWeekdayPatternRoundTrip(t *testing.T) {
	for _, pattern := range []string{"2,4,6", "8", "2,3,4,5,6,7,8", "7,5,3"} {
		set := ParseWeekdayPattern(pattern)
		again := ParseWeekdayPattern(WeekdayPatternString(set))
		if len(again) != len(set) {
			t.Fatalf("round-trip of %q changed set size: %v vs %v", pattern, set, again)
		}
		for wd := range set {
			if _, ok := again[wd]; !ok {
				t.Errorf("round-trip of %q lost %v", pattern, wd)
			}
		}
	}
}

func TestParseTimeRange(t *testing.T) {
	t.Run("valid evening slot", func(t *testing.T) {
		start, end, err := ParseTimeRange("19:45-21:15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start.String() != "19:45" || end.String() != "21:15" {
			t.Errorf("got %s-%s, want 19:45-21:15", start, end)
		}
	})

	for _, bad := range []string{"", "19:45", "19:45-", "aa:bb-21:15", "19:45-cc:dd", "25:00-26:00"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, _, err := ParseTimeRange(bad)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseTimeRange(%q) err = %v, want ErrInvalidFormat", bad, err)
			}
		})
	}
}

func TestTimeOfDayAt(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	got := (TimeOfDay{Hour: 19, Minute: 45}).At(day)
	want := time.Date(2026, 3, 2, 19, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}
