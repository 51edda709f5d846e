package service

import (
	"testing"
	"time"

	sessionModel "izone_backend/internals/features/academics/sessions/model"
)

func session(day time.Time, start, end, status string) *sessionModel.SessionModel {
	return &sessionModel.SessionModel{
		SessionDate:      day,
		SessionStartTime: start,
		SessionEndTime:   end,
		SessionStatus:    status,
	}
}

func TestComputeSessionStatus(t *testing.T) {
	day := date(2026, 3, 2)
	at := func(hh, mm int) time.Time {
		return time.Date(2026, 3, 2, hh, mm, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		s    *sessionModel.SessionModel
		now  time.Time
		want string
	}{
		{name: "before window", s: session(day, "19:45", "21:15", sessionModel.SessionStatusScheduled), now: at(18, 0), want: sessionModel.SessionStatusScheduled},
		{name: "at window start", s: session(day, "19:45", "21:15", sessionModel.SessionStatusScheduled), now: at(19, 45), want: sessionModel.SessionStatusOngoing},
		{name: "inside window", s: session(day, "19:45", "21:15", sessionModel.SessionStatusScheduled), now: at(20, 30), want: sessionModel.SessionStatusOngoing},
		{name: "after window", s: session(day, "19:45", "21:15", sessionModel.SessionStatusOngoing), now: at(22, 0), want: sessionModel.SessionStatusCompleted},
		{name: "previous day completed", s: session(day, "19:45", "21:15", sessionModel.SessionStatusScheduled), now: at(10, 0).AddDate(0, 0, 1), want: sessionModel.SessionStatusCompleted},
		{name: "cancelled is sticky before window", s: session(day, "19:45", "21:15", sessionModel.SessionStatusCancelled), now: at(18, 0), want: sessionModel.SessionStatusCancelled},
		{name: "cancelled is sticky after window", s: session(day, "19:45", "21:15", sessionModel.SessionStatusCancelled), now: at(23, 0), want: sessionModel.SessionStatusCancelled},
		{name: "unparsable window keeps status", s: session(day, "late", "later", sessionModel.SessionStatusScheduled), now: at(23, 0), want: sessionModel.SessionStatusScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeSessionStatus(tt.s, tt.now); got != tt.want {
				t.Errorf("ComputeSessionStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Running the computation twice at the same instant must not change the
// answer: the sweep is idempotent per tick.
func TestComputeSessionStatusIdempotent(t *testing.T) {
	day := date(2026, 3, 2)
	now := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)

	s := session(day, "19:45", "21:15", sessionModel.SessionStatusScheduled)
	first := ComputeSessionStatus(s, now)
	s.SessionStatus = first
	second := ComputeSessionStatus(s, now)
	if first != second {
		t.Errorf("statuses diverged: %q then %q", first, second)
	}
}

func TestIsPastSession(t *testing.T) {
	day := date(2026, 3, 2)
	tests := []struct {
		name string
		s    *sessionModel.SessionModel
		now  time.Time
		want bool
	}{
		{name: "starts later today", s: session(day, "19:45", "21:15", ""), now: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), want: false},
		{name: "already started today", s: session(day, "19:45", "21:15", ""), now: time.Date(2026, 3, 2, 19, 45, 0, 0, time.UTC), want: true},
		{name: "yesterday", s: session(day, "19:45", "21:15", ""), now: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), want: true},
		{name: "next week", s: session(day.AddDate(0, 0, 7), "19:45", "21:15", ""), now: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPastSession(tt.s, tt.now); got != tt.want {
				t.Errorf("IsPastSession() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegenerationStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("class starting in the future keeps its start date", func(t *testing.T) {
		start := date(2026, 4, 1)
		if got := regenerationStart(start, now); !got.Equal(start) {
			t.Errorf("got %v, want %v", got, start)
		}
	})

	t.Run("running class resumes tomorrow", func(t *testing.T) {
		start := date(2026, 2, 1)
		want := date(2026, 3, 11)
		if got := regenerationStart(start, now); !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}
