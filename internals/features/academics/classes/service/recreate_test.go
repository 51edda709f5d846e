package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	sessionModel "izone_backend/internals/features/academics/sessions/model"
)

// The SQL window in futureScope and the row predicate must agree, and both
// must be the exact complement of IsPastSession for well-formed start times.
func TestFutureWindowComplementsPastCutoff(t *testing.T) {
	now := time.Date(2026, 3, 10, 19, 45, 30, 0, time.UTC)
	days := []time.Time{
		date(2026, 3, 9),  // yesterday
		date(2026, 3, 10), // today
		date(2026, 3, 11), // tomorrow
	}
	starts := []string{"00:00", "19:44", "19:45", "19:46", "23:59"}

	for _, day := range days {
		for _, start := range starts {
			s := session(day, start, "21:00", sessionModel.SessionStatusScheduled)
			past := IsPastSession(s, now)
			future := isFutureSession(s, now)
			if past == future {
				t.Errorf("session %s %s: IsPastSession=%v and isFutureSession=%v agree, want complements",
					day.Format("2006-01-02"), start, past, future)
			}
		}
	}
}

// Regenerating a running class under a new weekday pattern must leave held
// sessions untouched and fill the remainder of the course with strictly
// future dates.
func TestRegenerationPreservesHistory(t *testing.T) {
	classStart := date(2026, 3, 2) // Monday
	courseTotal := 10
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) // Tuesday of week 2

	// Materialize the original Mon/Wed timetable; held meetings are completed.
	var sessions []*sessionModel.SessionModel
	for _, d := range GenerateSessionDates(classStart, mustSet("2,4"), courseTotal) {
		s := session(d, "19:00", "20:30", sessionModel.SessionStatusScheduled)
		if IsPastSession(s, now) {
			s.SessionStatus = sessionModel.SessionStatusCompleted
		}
		s.SessionID = uuid.New()
		sessions = append(sessions, s)
	}

	var past, future []*sessionModel.SessionModel
	for _, s := range sessions {
		if isFutureSession(s, now) {
			future = append(future, s)
		} else {
			past = append(past, s)
		}
	}
	// Mar 2, 4 and 9 have already started by Tuesday noon.
	if len(past) != 3 {
		t.Fatalf("got %d past sessions, want 3", len(past))
	}
	if len(future) != 7 {
		t.Fatalf("got %d future sessions, want 7", len(future))
	}

	// Drop the future set and regenerate under the new Tue/Thu pattern.
	needed := courseTotal - len(past)
	from := regenerationStart(classStart, now)
	newDates := GenerateSessionDates(from, mustSet("3,5"), needed)
	if len(newDates) != needed {
		t.Fatalf("got %d regenerated dates, want %d", len(newDates), needed)
	}

	today := DateOf(now)
	for i, d := range newDates {
		if !d.After(today) {
			t.Errorf("newDates[%d]=%v is not strictly after %v", i, d, today)
		}
	}
	if len(past)+len(newDates) != courseTotal {
		t.Errorf("past + regenerated = %d, want course total %d", len(past)+len(newDates), courseTotal)
	}

	// History is frozen: the held rows keep their identity and dates.
	wantPastDates := []time.Time{date(2026, 3, 2), date(2026, 3, 4), date(2026, 3, 9)}
	for i, s := range past {
		if !s.SessionDate.Equal(wantPastDates[i]) {
			t.Errorf("past[%d].SessionDate = %v, want %v", i, s.SessionDate, wantPastDates[i])
		}
		if s.SessionStatus != sessionModel.SessionStatusCompleted {
			t.Errorf("past[%d].SessionStatus = %q, want completed", i, s.SessionStatus)
		}
		if s.SessionID == uuid.Nil {
			t.Errorf("past[%d] lost its id", i)
		}
	}
}

// A teacher handover repoints upcoming sessions only: sessions already held
// keep whoever actually taught them, including per-session substitutes.
func TestFutureWindowSelectsOnlyUpcoming(t *testing.T) {
	originalTeacher := uuid.New()
	substitute := uuid.New()
	newTeacher := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	makeRow := func(d time.Time, teacherID uuid.UUID) *sessionModel.SessionModel {
		s := session(d, "19:00", "20:30", sessionModel.SessionStatusScheduled)
		tid := teacherID
		s.SessionTeacherID = &tid
		return s
	}
	rows := []*sessionModel.SessionModel{
		makeRow(date(2026, 3, 2), originalTeacher),
		makeRow(date(2026, 3, 4), substitute), // a held makeup taught by a substitute
		makeRow(date(2026, 3, 11), originalTeacher),
		makeRow(date(2026, 3, 16), originalTeacher),
	}

	for _, s := range rows {
		if isFutureSession(s, now) {
			id := newTeacher
			s.SessionTeacherID = &id
		}
	}

	if *rows[0].SessionTeacherID != originalTeacher {
		t.Error("held session lost its original teacher")
	}
	if *rows[1].SessionTeacherID != substitute {
		t.Error("held session lost its substitute teacher")
	}
	if *rows[2].SessionTeacherID != newTeacher || *rows[3].SessionTeacherID != newTeacher {
		t.Error("upcoming sessions were not repointed to the new teacher")
	}
}
